// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr error
	}{
		{name: "low", input: "LOW", want: PriorityLow},
		{name: "medium", input: "MEDIUM", want: PriorityMedium},
		{name: "high", input: "HIGH", want: PriorityHigh},
		{name: "unknown value rejected", input: "URGENT", wantErr: ErrInvalidPriority},
		{name: "lowercase rejected", input: "high", wantErr: ErrInvalidPriority},
		{name: "empty rejected", input: "", wantErr: ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 0, Priority("").Rank())
}

func TestPriorityScanValue(t *testing.T) {
	var p Priority
	require.NoError(t, p.Scan("HIGH"))
	assert.Equal(t, PriorityHigh, p)

	assert.ErrorIs(t, p.Scan("CRITICAL"), ErrInvalidPriority)

	v, err := PriorityLow.Value()
	require.NoError(t, err)
	assert.Equal(t, "LOW", v)

	_, err = Priority("nope").Value()
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

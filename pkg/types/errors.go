// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "errors"

// Standard errors returned by the store and the catalog facade.
// Callers match them with errors.Is.
var (
	// ErrNotFound is returned when a lookup by ID matches no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when an operation receives an empty ID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidTitle is returned when a title is empty after trimming.
	ErrInvalidTitle = errors.New("title must not be empty")

	// ErrDuplicateTitle is returned when a title is already cataloged.
	ErrDuplicateTitle = errors.New("title already registered")

	// ErrInvalidStatus is returned when a stored or supplied watch status
	// string is not one of the recognized values.
	ErrInvalidStatus = errors.New("invalid watch status")

	// ErrInvalidPriority is returned when a stored or supplied priority
	// string is not one of the recognized values.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrStoreClosed is returned when an operation is attempted on a
	// closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrStorage wraps low-level storage failures at the facade boundary.
	// Layers above the facade never see raw driver errors.
	ErrStorage = errors.New("storage failure")
)

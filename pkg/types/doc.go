// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the domain entities, enumerations, and standard
// errors for the Anichest catalog: anime titles, per-title watch status,
// wishlist entries, and the joined read models built from them.
package types

// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import "errors"

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

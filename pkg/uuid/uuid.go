// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered identifiers for account records.

Version 7 values sort by creation time, which keeps the primary-key B-tree
append-mostly in PostgreSQL.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
// It panics only when the system entropy source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	return uuid.Validate(s) == nil
}

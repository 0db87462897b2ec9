// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes user-supplied identifiers.
//
// # Usage
//
// User names are compared byte-for-byte, so visually identical input typed
// with composed or decomposed accents (é vs e + U+0301) must map to the same
// bytes before it reaches the store.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UserName returns s in Unicode NFC form with surrounding whitespace removed.
// Case is preserved.
func UserName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

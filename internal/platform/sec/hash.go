// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor applied to every stored account password.
const passwordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt encoding of password, salt included.
// Inputs longer than 72 bytes are rejected by bcrypt rather than truncated.
func HashPassword(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("sec: hash password: %w", err)
	}
	return string(encoded), nil
}

// CheckPasswordHash reports whether password matches the stored encoding.
// A malformed encoding never matches.
func CheckPasswordHash(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}

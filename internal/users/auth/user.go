// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user registration and credential login.

A successful login yields a signed token carrying the account id and user
name. Nothing else about the session is stored server-side.
*/
package auth

import "time"

// # Domain Entities

// User is a registered account together with its two item collections.
type User struct {
	ID           string    `json:"_id"`
	UserName     string    `json:"userName"`
	PasswordHash string    `json:"-"`
	Favourites   []string  `json:"favourites"`
	History      []string  `json:"history"`
	CreatedAt    time.Time `json:"createdAt"`
}

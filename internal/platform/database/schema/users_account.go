// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column identifiers shared by SQL repositories.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	UserName     string
	PasswordHash string
	Favourites   string
	History      string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	UserName:     "username",
	PasswordHash: "passwordhash",
	Favourites:   "favourites",
	History:      "history",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all column names in table order.
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.UserName, t.PasswordHash, t.Favourites, t.History, t.CreatedAt}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Credential Constraints

const (
	// MaxUserNameLength bounds the user name in characters.
	MaxUserNameLength = 100

	// MaxPasswordBytes is the bcrypt input limit; longer passwords would be truncated silently.
	MaxPasswordBytes = 72
)

// # Client Messages

const (
	MsgUserNameTaken      = "User Name already taken"
	MsgPasswordsMismatch  = "Passwords do not match"
	MsgInvalidCredentials = "Invalid login credentials"
	MsgLoginSuccessful    = "login successful"

	msgRegisteredFormat    = "User %s successfully registered"
	msgUnknownUserFormat   = "Unable to find user %s"
	msgWrongPasswordFormat = "Incorrect password for user %s"
)

// # Field Identifiers

const (
	FieldUserName  = "userName"
	FieldPassword  = "password"
	FieldPassword2 = "password2"
)

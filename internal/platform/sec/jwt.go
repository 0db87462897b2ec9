// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the auth.TokenProvider and middleware.TokenVerifier
// interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret is returned when a TokenService is built without a signing secret.
	ErrMissingSecret = errors.New("sec: signing secret is required")

	// ErrInvalidClaims is returned when a verified token lacks the identity claim.
	ErrInvalidClaims = errors.New("sec: invalid token claims")
)

// AuthClaims represents the payload embedded inside a bearer token.
//
// # Claims
//
// The identity is exactly {_id, userName}. [middleware.Authenticate] rebuilds
// the caller from these fields without a store lookup. No password material
// and no roles are embedded.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Field names match tokens issued by earlier versions of the service.
	UserID   string `json:"_id"`
	UserName string `json:"userName"`
}

// TokenConfig is the explicit configuration of a [TokenService].
type TokenConfig struct {
	// Secret is the shared HMAC signing secret.
	Secret string
	// TTL is the token lifetime. Zero issues tokens without an expiry claim.
	TTL time.Duration
	// Issuer is written to and checked against the 'iss' claim.
	Issuer string
}

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new TokenService from an explicit configuration.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("sec: token ttl must not be negative, got %s", cfg.TTL)
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a new signed token for a user.
func (service *TokenService) GenerateToken(userID, userName string) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   service.issuer,
			IssuedAt: jwt.NewNumericDate(currentTime),
		},
		UserID:   userID,
		UserName: userName,
	}

	if service.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(currentTime.Add(service.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.now),
	}
	if service.issuer != "" {
		options = append(options, jwt.WithIssuer(service.issuer))
	}
	if service.ttl > 0 {
		options = append(options, jwt.WithExpirationRequired())
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, options...)

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.UserID == "" || claims.UserName == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

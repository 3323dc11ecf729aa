package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/callerid/internal/models"
)

const (
	tokenIssuer       = "callerid"
	minSecretBytes    = 32
	invalidTokenReply = "Invalid token"
)

// Claims is the payload bound into every session credential.
type Claims struct {
	UserID uint   `json:"id"`
	Mobile string `json:"mobile"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session credentials. It holds no
// state besides the key, so a token stays valid until it expires.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer for the given signing secret and lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("signing secret must be at least %d bytes", minSecretBytes)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime of issued credentials.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue creates a signed credential for the user.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	if user == nil || user.ID == 0 {
		return "", errors.New("cannot issue credential for unsaved user")
	}

	now := i.now()
	claims := &Claims{
		UserID: user.ID,
		Mobile: user.Mobile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign credential: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the embedded
// claims. Every failure is reported as ErrInvalidCredential.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidCredential, Message: invalidTokenReply, Err: err}
	}

	if claims.UserID == 0 || claims.Mobile == "" {
		return nil, &Error{Kind: ErrInvalidCredential, Message: invalidTokenReply, Err: errors.New("missing identity claims")}
	}
	if claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, &Error{Kind: ErrInvalidCredential, Message: invalidTokenReply, Err: errors.New("subject mismatch")}
	}

	return claims, nil
}

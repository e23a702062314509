// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/models"
)

// IdentityHeader carries the caller's identity on every request
const IdentityHeader = "X-Identity"

// maxIdentityLen bounds identity keys accepted from the wire
const maxIdentityLen = 256

var (
	ErrMissingIdentity = errors.New("missing identity")
	ErrInvalidIdentity = errors.New("invalid identity format")
)

// GenerateID creates a random UUID string for audit records
func GenerateID() string {
	return uuid.NewString()
}

// CallerIdentity returns the identity presented in the X-Identity header.
// An absent header yields the empty identity, which no role check accepts.
func CallerIdentity(r *http.Request) models.Identity {
	return models.Identity(strings.TrimSpace(r.Header.Get(IdentityHeader)))
}

// ValidateIdentity checks that an identity is usable as a registry key
func ValidateIdentity(id models.Identity) error {
	if id == "" {
		return ErrMissingIdentity
	}
	if len(id) > maxIdentityLen || !utf8.ValidString(string(id)) {
		return ErrInvalidIdentity
	}
	for _, r := range string(id) {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return ErrInvalidIdentity
		}
	}
	return nil
}

// SameIdentity compares two identities in constant time.
// The empty identity never matches, not even itself.
func SameIdentity(a, b models.Identity) bool {
	if a == "" || b == "" {
		return false
	}
	return hmac.Equal([]byte(a), []byte(b))
}

// Fingerprint creates a one-way hash of an identity for logs
// Includes salt so raw keys can't be recovered from log lines
func Fingerprint(id models.Identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(id))
	sum := h.Sum(nil)
	// First 8 bytes is enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}

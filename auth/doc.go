// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller identification and identity utilities.

# Caller Identity

Every request names its caller in the X-Identity header:

	caller := auth.CallerIdentity(r)

Identities are opaque keys issued elsewhere. This package never mints them;
it only reads, validates, and compares them.

# Comparison

Administrator checks compare identities in constant time:

	if auth.SameIdentity(caller, admin) { ... }

The empty identity never matches anything, so unauthenticated callers are
rejected by every role check.

# Validation

	err := auth.ValidateIdentity(id)  // ErrMissingIdentity, ErrInvalidIdentity

Valid identities are non-empty, printable, contain no whitespace, and are at
most 256 bytes.

# Fingerprints

Logs never carry raw identity keys. Use a salted fingerprint instead:

	slog.Info("vote cast", "participant", auth.Fingerprint(id, salt))

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.

# ID Generation

Random UUIDs for audit records:

	id := auth.GenerateID()
*/
package auth

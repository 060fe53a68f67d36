/*
 * Copyright 2022 Michael Graff.
 *
 * Licensed under the Apache License, Version 2.0 (the "License")
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jwthmac

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when the signing key is empty.
	ErrInvalidKey = errors.New("key must not be empty")

	// ErrEncoding is returned when the claims cannot be serialized to JSON.
	ErrEncoding = errors.New("claims cannot be encoded")

	// ErrInvalidExpiry is returned when an expiration expression cannot be parsed.
	ErrInvalidExpiry = errors.New("invalid expiration expression")

	// ErrMalformedToken indicates the token is not a three-part HS256 compact JWT.
	ErrMalformedToken = errors.New("malformed token")

	// ErrSignatureMismatch indicates the signature was not made with the key.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrExpiredToken indicates the "exp" claim has passed.
	ErrExpiredToken = errors.New("token has expired")

	// ErrNotYetValid indicates the "nbf" claim is still in the future.
	ErrNotYetValid = errors.New("token is not yet valid")

	// ErrTokenTooOld indicates the "iat" claim is older than the allowed age.
	ErrTokenTooOld = errors.New("token exceeds maximum age")

	// ErrClaimParse indicates the claims segment is not a JSON object, or a
	// registered time claim is not a number.
	ErrClaimParse = errors.New("claims cannot be parsed")
)

// Reason identifies which check rejected a token.
type Reason int

const (
	// ReasonInvalidKey means the verification key was empty.
	ReasonInvalidKey Reason = iota + 1
	// ReasonMalformed means the token structure or header was unusable.
	ReasonMalformed
	// ReasonSignatureMismatch means the recomputed signature differs.
	ReasonSignatureMismatch
	// ReasonClaimParse means the claims could not be decoded.
	ReasonClaimParse
	// ReasonExpired means "exp" has passed.
	ReasonExpired
	// ReasonNotYetValid means "nbf" is in the future.
	ReasonNotYetValid
	// ReasonTooOld means "iat" is older than the configured maximum age.
	ReasonTooOld
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidKey:
		return "invalid_key"
	case ReasonMalformed:
		return "malformed"
	case ReasonSignatureMismatch:
		return "signature_mismatch"
	case ReasonClaimParse:
		return "claim_parse"
	case ReasonExpired:
		return "expired"
	case ReasonNotYetValid:
		return "not_yet_valid"
	case ReasonTooOld:
		return "too_old"
	default:
		return "unknown"
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonInvalidKey:
		return ErrInvalidKey
	case ReasonMalformed:
		return ErrMalformedToken
	case ReasonSignatureMismatch:
		return ErrSignatureMismatch
	case ReasonClaimParse:
		return ErrClaimParse
	case ReasonExpired:
		return ErrExpiredToken
	case ReasonNotYetValid:
		return ErrNotYetValid
	case ReasonTooOld:
		return ErrTokenTooOld
	default:
		return ErrMalformedToken
	}
}

// VerifyError describes why a token was rejected.  Verify never hands
// one to its caller; it exists for logging and for tests inside this
// package.
type VerifyError struct {
	Reason Reason
	err    error
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error, which always wraps the sentinel
// matching Reason.
func (e *VerifyError) Unwrap() error {
	return e.err
}

func reject(reason Reason, format string, args ...any) *VerifyError {
	msg := fmt.Sprintf(format, args...)
	return &VerifyError{
		Reason: reason,
		err:    fmt.Errorf("%s: %w", msg, reason.sentinel()),
	}
}

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
	"math"
	"strings"

	"go.uber.org/zap"
)

const tokenSegments = 3

// Verify will validate the integrity of token using key, then check
// its time-based claims.  Expiration ("exp") and not-before ("nbf") are
// enforced when present; "iat" must be numeric when present.
//
// On success the claims are returned with ok set.  Any failure returns
// nil, false; the reason is only reported through the logger set with
// WithLogger.
func Verify(token string, key []byte, opts ...Option) (claims Claims, ok bool) {
	s := newSettings(opts)
	claims, verr := s.validate(token, key)
	if verr != nil {
		s.logger.Debug("token rejected", zap.Stringer("reason", verr.Reason), zap.Error(verr))
		return nil, false
	}
	return claims, true
}

func (s *settings) validate(token string, key []byte) (Claims, *VerifyError) {
	if len(key) == 0 {
		return nil, reject(ReasonInvalidKey, "empty verification key")
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return nil, reject(ReasonMalformed, "token has %d segments", len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return nil, reject(ReasonMalformed, "segment %d is empty", i)
		}
	}

	if !signatureMatches(key, parts[0], parts[1], parts[2]) {
		return nil, reject(ReasonSignatureMismatch, "signature does not match")
	}

	if verr := checkHeader(parts[0]); verr != nil {
		return nil, verr
	}

	raw, err := decodeSegment(parts[1])
	if err != nil {
		return nil, reject(ReasonClaimParse, "decode claims: %v", err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, reject(ReasonClaimParse, "parse claims: %v", err)
	}

	claims := Claims(obj)
	if verr := s.checkTimes(claims); verr != nil {
		return nil, verr
	}
	return claims, nil
}

func checkHeader(segment string) *VerifyError {
	raw, err := decodeSegment(segment)
	if err != nil {
		return reject(ReasonMalformed, "decode header: %v", err)
	}
	h, err := decodeObject(raw)
	if err != nil {
		return reject(ReasonMalformed, "parse header: %v", err)
	}
	if alg, _ := h["alg"].(string); alg != AlgHS256 {
		return reject(ReasonMalformed, "unexpected algorithm %v", h["alg"])
	}
	if _, found := h["crit"]; found {
		return reject(ReasonMalformed, "critical header parameters are not supported")
	}
	return nil
}

func (s *settings) checkTimes(claims Claims) *VerifyError {
	now := float64(nowFromClock(s.clock).Unix())
	leeway := math.Floor(s.leeway.Seconds())

	exp, found, err := claims.numeric(ExpirationKey)
	if err != nil {
		return reject(ReasonClaimParse, "%v", err)
	}
	if found && now >= exp+leeway {
		return reject(ReasonExpired, "expired at %d", int64(exp))
	}

	nbf, found, err := claims.numeric(NotBeforeKey)
	if err != nil {
		return reject(ReasonClaimParse, "%v", err)
	}
	if found && now < nbf-leeway {
		return reject(ReasonNotYetValid, "not valid before %d", int64(nbf))
	}

	iat, found, err := claims.numeric(IssuedAtKey)
	if err != nil {
		return reject(ReasonClaimParse, "%v", err)
	}
	if s.maxAge > 0 {
		if !found {
			return reject(ReasonTooOld, "maximum age set but no %q claim", IssuedAtKey)
		}
		if now-iat > math.Floor(s.maxAge.Seconds())+leeway {
			return reject(ReasonTooOld, "issued at %d", int64(iat))
		}
	}
	return nil
}

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
	"fmt"

	"go.uber.org/zap"
)

// AlgHS256 is the only signing algorithm this package produces or accepts.
const AlgHS256 = "HS256"

type header struct {
	Algorithm string `json:"alg"`
}

var headerSegment = mustEncodeHeader()

func mustEncodeHeader() string {
	b, err := encodeJSON(header{Algorithm: AlgHS256})
	if err != nil {
		panic(fmt.Sprintf("jwthmac: encoding header: %v", err))
	}
	return encodeSegment(b)
}

// Sign will create a new JWT from payload, signed with key.
// Inception ("iat") will always be set to whatever the configured clock
// returns as Now(), replacing any "iat" in payload.  If an expiration
// option is given, expiration ("exp") will also be added to the claims.
//
// payload itself is not modified.
func Sign(payload Claims, key []byte, opts ...Option) (string, error) {
	s := newSettings(opts)
	signed, err := s.sign(payload, key)
	if err != nil {
		s.logger.Debug("token signing failed", zap.Error(err))
		return "", err
	}
	return signed, nil
}

func (s *settings) sign(payload Claims, key []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrInvalidKey
	}

	now := nowFromClock(s.clock)
	claims := payload.Clone()
	claims[IssuedAtKey] = now.Unix()
	if s.expires != nil {
		exp, err := s.expires(now)
		if err != nil {
			return "", err
		}
		claims[ExpirationKey] = exp
	}

	b, err := encodeJSON(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	claimsSegment := encodeSegment(b)
	return headerSegment + "." + claimsSegment + "." + signature(key, headerSegment, claimsSegment), nil
}

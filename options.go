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
	"time"

	"go.uber.org/zap"
)

// Option specifies non-default overrides for a single Sign or Verify
// call.  Options that only make sense for one of the two are ignored
// by the other.
type Option func(*settings)

type settings struct {
	clock   Clock
	logger  *zap.Logger
	expires func(now time.Time) (int64, error)
	leeway  time.Duration
	maxAge  time.Duration
}

func newSettings(opts []Option) *settings {
	s := &settings{
		clock:  &TimeClock{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithClock sets the source of 'current time' for signing ("iat",
// relative "exp") and for validating time claims.
func WithClock(clock Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithLogger sets the logger used to report why signing or
// verification failed.  Reports are at debug level and never include
// keys or tokens.  A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExpires sets the expiration ("exp") of a signed token from an
// expression.  A period such as "1h" or "7 days" is added to the
// current time; a string of digits is used as an absolute unix
// timestamp.  See ParsePeriod for the accepted periods.
func WithExpires(expr string) Option {
	return func(s *settings) {
		s.expires = func(now time.Time) (int64, error) {
			return expirationFromExpr(expr, now)
		}
	}
}

// WithExpiresIn sets the expiration of a signed token to the current
// time plus d, truncated to whole seconds.
func WithExpiresIn(d time.Duration) Option {
	return func(s *settings) {
		s.expires = func(now time.Time) (int64, error) {
			return now.Unix() + int64(d/time.Second), nil
		}
	}
}

// WithExpiresAt sets an absolute expiration time on a signed token.
func WithExpiresAt(t time.Time) Option {
	return func(s *settings) {
		s.expires = func(time.Time) (int64, error) {
			return t.Unix(), nil
		}
	}
}

// WithLeeway allows for clock skew when checking "exp", "nbf" and the
// maximum age during verification.
func WithLeeway(d time.Duration) Option {
	return func(s *settings) {
		s.leeway = d
	}
}

// WithMaxAge rejects tokens whose "iat" claim is older than d, and
// tokens with no "iat" at all.  Zero disables the check.
func WithMaxAge(d time.Duration) Option {
	return func(s *settings) {
		s.maxAge = d
	}
}

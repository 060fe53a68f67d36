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

// Package jwthmac issues and validates compact JSON Web Tokens
// signed with HMAC-SHA256 (HS256) using a shared secret.
//
// Sign produces a token from a set of claims, always stamping the
// issued-at time ("iat") and optionally an expiration ("exp").
// Verify checks the signature and the time-based claims, and
// returns the claims only when everything holds.  Verify does not
// tell the caller which check failed; every failure looks the same.
//
// Nothing is stored between calls, so both functions may be used
// from any number of goroutines.
package jwthmac

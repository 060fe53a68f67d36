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
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// sum256 returns HMAC-SHA256(key, message).
func sum256(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)
	return h.Sum(nil)
}

// signature returns the encoded signature segment for the given
// header and claims segments.
func signature(key []byte, header, claims string) string {
	return encodeSegment(sum256(key, []byte(header+"."+claims)))
}

// signatureMatches compares the expected and presented signature
// segments in constant time.
func signatureMatches(key []byte, header, claims, presented string) bool {
	expected := signature(key, header, claims)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}

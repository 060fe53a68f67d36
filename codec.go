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
	"encoding/base64"
	"errors"
	"strings"
)

// segmentEncoding is the unpadded URL-safe alphabet.  Strict rejects
// encodings whose trailing bits are not zero, so every byte string has
// exactly one accepted segment form.
var segmentEncoding = base64.RawURLEncoding.Strict()

var errSegmentNewline = errors.New("segment contains a line break")

func encodeSegment(b []byte) string {
	return segmentEncoding.EncodeToString(b)
}

// decodeSegment reverses encodeSegment.  Padding and characters outside
// the URL alphabet are errors.  The stdlib decoder skips CR and LF, so
// those are rejected here first.
func decodeSegment(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, errSegmentNewline
	}
	return segmentEncoding.DecodeString(s)
}

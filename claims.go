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
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// Registered claim names used by this package.
const (
	IssuedAtKey   = "iat"
	ExpirationKey = "exp"
	NotBeforeKey  = "nbf"
)

// Claims is the JSON object carried in a token.  Values must be
// JSON-serializable.  Claims returned by Verify hold int64 for integral
// numbers, float64 for other numbers, map[string]any for objects and
// []any for arrays.
type Claims map[string]any

// Clone returns a shallow copy of c.  A nil Claims clones to an empty,
// non-nil map.
func (c Claims) Clone() Claims {
	out := make(Claims, len(c)+2)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// IssuedAt returns the "iat" claim, if present and numeric.
func (c Claims) IssuedAt() (time.Time, bool) {
	return c.timeClaim(IssuedAtKey)
}

// ExpiresAt returns the "exp" claim, if present and numeric.
func (c Claims) ExpiresAt() (time.Time, bool) {
	return c.timeClaim(ExpirationKey)
}

// NotBefore returns the "nbf" claim, if present and numeric.
func (c Claims) NotBefore() (time.Time, bool) {
	return c.timeClaim(NotBeforeKey)
}

func (c Claims) timeClaim(name string) (time.Time, bool) {
	v, present, err := c.numeric(name)
	if !present || err != nil {
		return time.Time{}, false
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
}

// numeric reads a NumericDate claim as seconds since the epoch.
func (c Claims) numeric(name string) (value float64, present bool, err error) {
	raw, present := c[name]
	if !present {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, true, fmt.Errorf("%q claim: %w", name, err)
		}
		return f, true, nil
	default:
		return 0, true, fmt.Errorf("%q claim must be a number, got %T", name, raw)
	}
}

var errInvalidJSON = errors.New("invalid JSON")

func encodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// decodeObject parses b as a single JSON object, keeping integers exact.
func decodeObject(b []byte) (map[string]any, error) {
	if !json.Valid(b) {
		return nil, errInvalidJSON
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	if err := normalizeNumbers(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// normalizeNumbers replaces json.Number values in place with int64 when
// the number is integral and fits, and float64 otherwise.
func normalizeNumbers(v any) error {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			n, err := normalizeValue(e)
			if err != nil {
				return err
			}
			t[k] = n
		}
	case []any:
		for i, e := range t {
			n, err := normalizeValue(e)
			if err != nil {
				return err
			}
			t[i] = n
		}
	}
	return nil
}

func normalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", t, err)
		}
		return f, nil
	case map[string]any, []any:
		return v, normalizeNumbers(t)
	default:
		return v, nil
	}
}

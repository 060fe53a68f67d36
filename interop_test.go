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
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ jwt.Clock = (*TimeClock)(nil)

func TestInterop_jwxParsesSignedToken(t *testing.T) {
	t.Parallel()
	key := GenerateSymmetricKey()
	signed, err := Sign(Claims{"sub": "u1", "foo": "bar"}, key, WithClock(&TimeClock{1111}), WithExpires("1h"))
	require.NoError(t, err)

	tok, err := jwt.Parse([]byte(signed),
		jwt.WithKey(jwa.HS256, key),
		jwt.WithValidate(true),
		jwt.WithClock(&TimeClock{2222}),
	)
	require.NoError(t, err)
	assert.Equal(t, "u1", tok.Subject())
	assert.Equal(t, int64(1111), tok.IssuedAt().Unix())
	assert.Equal(t, int64(4711), tok.Expiration().Unix())
	foo, found := tok.Get("foo")
	require.True(t, found)
	assert.Equal(t, "bar", foo)

	_, err = jwt.Parse([]byte(signed),
		jwt.WithKey(jwa.HS256, key),
		jwt.WithValidate(true),
		jwt.WithClock(&TimeClock{5000}),
	)
	assert.Error(t, err)
}

func TestInterop_verifyJWXToken(t *testing.T) {
	t.Parallel()
	key := GenerateSymmetricKey()
	tok, err := jwt.NewBuilder().
		Subject("u1").
		IssuedAt(time.Unix(1111, 0)).
		Expiration(time.Unix(5000, 0)).
		Claim("foo", "bar").
		Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, key))
	require.NoError(t, err)

	claims, ok := Verify(string(signed), key, WithClock(&TimeClock{2222}))
	require.True(t, ok)
	assert.Equal(t, Claims{"sub": "u1", "iat": int64(1111), "exp": int64(5000), "foo": "bar"}, claims)

	_, ok = Verify(string(signed), key, WithClock(&TimeClock{5000}))
	assert.False(t, ok)

	hs512, err := jwt.Sign(tok, jwt.WithKey(jwa.HS512, key))
	require.NoError(t, err)
	_, ok = Verify(string(hs512), key, WithClock(&TimeClock{2222}))
	assert.False(t, ok)
}

func TestInterop_golangJWTParsesSignedToken(t *testing.T) {
	t.Parallel()
	key := GenerateSymmetricKey()
	signed, err := Sign(Claims{"sub": "u1"}, key, WithClock(&TimeClock{1111}), WithExpires("1h"))
	require.NoError(t, err)

	parsed, err := gojwt.Parse(signed,
		func(*gojwt.Token) (any, error) { return key, nil },
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(func() time.Time { return time.Unix(2222, 0) }),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	mc, ok := parsed.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", mc["sub"])
	sub, err := mc.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
}

func TestInterop_verifyGolangJWTToken(t *testing.T) {
	t.Parallel()
	key := GenerateSymmetricKey()
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": "u1",
		"iat": 1111,
		"exp": 5000,
	}).SignedString(key)
	require.NoError(t, err)

	claims, ok := Verify(signed, key, WithClock(&TimeClock{2222}))
	require.True(t, ok)
	assert.Equal(t, Claims{"sub": "u1", "iat": int64(1111), "exp": int64(5000)}, claims)

	_, ok = Verify(signed, GenerateSymmetricKey(), WithClock(&TimeClock{2222}))
	assert.False(t, ok)
}

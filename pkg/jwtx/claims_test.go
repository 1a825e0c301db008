package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretLength))

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "campus"}}

	require.NoError(t, c.ValidateIssuer("campus"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewAccessClaims("u1", "student", "CSE", "", "Ada", nil, time.Minute, "campus", now)

	require.NoError(t, c.ValidateExpiryWithLeeway(now.Add(30*time.Second), 0))
	require.ErrorIs(t, c.ValidateExpiryWithLeeway(now.Add(2*time.Minute), 0), jwtx.ErrExpired)
	require.NoError(t, c.ValidateExpiryWithLeeway(now.Add(2*time.Minute), 5*time.Minute))
	require.ErrorIs(t, c.ValidateExpiryWithLeeway(now.Add(-time.Minute), 0), jwtx.ErrNotYetValid)
}

func TestHasScope(t *testing.T) {
	c := jwtx.Claims{Scopes: []string{"events:read", "events:write"}}
	require.True(t, c.HasScope("events:write"))
	require.False(t, c.HasScope("results:write"))
}

func TestSignAndVerify(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	verifier, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "campus"})
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("u1", "admin", "ECE", "department", "Grace",
		[]string{"results:write"}, time.Hour, "campus", time.Now())

	tok, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", got.Subject)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "ECE", got.Department)
	require.Equal(t, "department", got.AdminLevel)
	require.True(t, got.HasScope("results:write"))
}

func TestVerifyRejects(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewVerifierHS256([]byte(strings.Repeat("x", 40)), jwtx.VerifyOptions{})
		require.NoError(t, err)

		tok, err := signer.Sign(jwtx.NewAccessClaims("u", "student", "", "", "", nil, time.Hour, "", time.Now()))
		require.NoError(t, err)

		_, err = other.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		v, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		require.NoError(t, err)

		tok, err := signer.Sign(jwtx.NewAccessClaims("u", "student", "", "", "", nil,
			time.Minute, "", time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		v, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "campus"})
		require.NoError(t, err)

		tok, err := signer.Sign(jwtx.NewAccessClaims("u", "student", "", "", "", nil, time.Hour, "elsewhere", time.Now()))
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		v, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		require.NoError(t, err)

		_, err = v.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestWeakSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewVerifierHS256([]byte("short"), jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurbekov/user-service/pkg/user"
)

func testUser() user.User {
	return user.User{
		ID:    uuid.New(),
		Name:  "Ann",
		Email: "a@x.com",
	}
}

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "user-service", time.Hour)
	u := testUser()

	tok, err := gen.Generate(context.Background(), u)
	require.NoError(t, err)

	claims, err := gen.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "user-service", claims.Issuer)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "user-service", -time.Second)
	tok, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Verify(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator("right-secret", "user-service", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = NewGenerator("wrong-secret", "user-service", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "user-service", time.Hour)
	_, err := gen.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewGenerator("super-secret", "other-service", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = NewGenerator("super-secret", "user-service", time.Hour).Verify(tok)
	require.Error(t, err)
}

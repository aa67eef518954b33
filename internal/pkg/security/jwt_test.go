package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// 本包测试会改写包级密钥，不能并行

func TestGenerateAndValidateToken(t *testing.T) {
	Init("test-secret", 1)

	token, err := GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.True(t, claims.Authenticated)
	require.Equal(t, "Beacon", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	Init("secret-a", 1)
	token, err := GenerateToken()
	require.NoError(t, err)

	Init("secret-b", 1)
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	Init("test-secret", 1)

	_, err := ValidateToken("not.a.token")
	require.Error(t, err)

	_, err = ValidateToken("")
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	Init("test-secret", 1)

	claims := &AdminClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "Beacon",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_RejectsUnauthenticatedClaims(t *testing.T) {
	Init("test-secret", 1)

	claims := &AdminClaims{
		Authenticated: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "Beacon",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	Init("test-secret", 1)

	claims := &AdminClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, CheckPasswordHash("s3cret", hash))
	require.Error(t, CheckPasswordHash("wrong", hash))

	_, err = HashPassword("")
	require.Error(t, err)
}

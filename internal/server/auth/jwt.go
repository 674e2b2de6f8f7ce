package auth

import (
	"strconv"
	"time"

	"github.com/akosarev/jokesapi/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token claim set. Subject carries the user id; Username is
// duplicated as a custom claim so handlers can greet without a store lookup.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// UserID decodes the subject back into the store's integer id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// IssueToken signs an HS256 token for the given user. Expiry is fixed at
// issuance time plus validityDuration; nothing is retained server-side.
func IssueToken(userID int64, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry against secretKey and returns the
// decoded claims. Only HS256 is accepted.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, shared.ErrInvalidToken
	}

	return claims, nil
}

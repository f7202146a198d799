package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload: registered iat/nbf/exp/sub plus a
// user_id copy of the subject kept for wire compatibility.
type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// CreateToken signs an HS256 JWT whose subject is the user id. The token is
// valid from now until now+ttl; there is no revocation or refresh.
func CreateToken(secret string, ttl time.Duration, userID int64) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	sub := strconv.FormatInt(userID, 10)
	claims := tokenClaims{
		UserID: sub,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates signature and time claims of a token and returns the
// encoded user id.
func ParseToken(tokenStr, secret string) (int64, error) {
	if secret == "" {
		return 0, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return 0, err
	}
	c, _ := tok.Claims.(*tokenClaims)
	if c == nil {
		return 0, errors.New("invalid claims")
	}
	sub := c.Subject
	if sub == "" {
		sub = c.UserID
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid subject")
	}
	return id, nil
}

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token namespaces. A token is only accepted by routes of its own audience.
const (
	AudienceCustomer = "customer"
	AudienceVendor   = "vendor"
	AudienceAdmin    = "admin"
)

// Claims are the custom JWT claims issued by the auth service.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the subject within a namespace.
func GenerateToken(userID uint, role string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			Audience:  jwt.ClaimStrings{role},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

var ErrInvalidToken = errors.New("invalid token")

// ParseToken verifies signature, expiry and (when given) that the token belongs
// to one of the accepted audiences.
func ParseToken(tokenStr, secret string, audiences ...string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	if len(audiences) == 0 {
		return claims, nil
	}
	for _, aud := range audiences {
		for _, have := range claims.Audience {
			if have == aud && claims.Role == aud {
				return claims, nil
			}
		}
	}
	return nil, ErrInvalidToken
}

package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator identifies the person running the attendance station.
type Operator struct {
	ID   int    `json:"nameid"`
	Name string `json:"unique_name"`
	Role string `json:"role"`
}

type OperatorClaims struct {
	Operator
	jwt.RegisteredClaims
}

// CreateOperatorToken mints an HMAC-signed bearer token for an operator.
// base64Secret is the base64-encoded signing key shared with the server.
func CreateOperatorToken(op *Operator, base64Secret string, expiresIn time.Duration) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}

	claims := OperatorClaims{
		Operator: *op,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "timescan",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

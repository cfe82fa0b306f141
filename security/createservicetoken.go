package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceIdentity is the caller identity carried in internal service
// tokens. The uid feeds the audit trail on every write.
type ServiceIdentity struct {
	Uid     int64
	Service string
}

type ServiceClaims struct {
	Uid     int64  `json:"uid"`
	Service string `json:"service"`
	jwt.RegisteredClaims
}

// CreateServiceToken mints an HS256 token for service-to-service calls.
func CreateServiceToken(identity ServiceIdentity, secret string, expiresInSeconds int64) (string, error) {
	claims := ServiceClaims{
		Uid:     identity.Uid,
		Service: identity.Service,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "falcon",
			Audience:  []string{"*.simplisafe.com"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

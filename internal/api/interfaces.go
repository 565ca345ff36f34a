package api

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTServiceI interface {
	// Verifies signature, issuer and time claims of bearer token
	ParseToken(tokenString string) (*JWTClaims, error)
}

// LiveHubI upgrades the request and blocks until the live session ends.
type LiveHubI interface {
	Serve(w http.ResponseWriter, r *http.Request, ownerID uuid.UUID) error
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

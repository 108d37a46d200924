package appMiddleware

import "github.com/golang-jwt/jwt/v5"

type contextKey string

const SessionIDKey contextKey = "sessionID"

// Claims carried by a planner session token. The session id is the subject.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

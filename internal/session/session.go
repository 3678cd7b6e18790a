// Package session carries the identity of the current request as an
// explicit value instead of ambient state. The auth middleware resolves a
// Session from the verified token claims and hands it to every service call
// that needs to know who is acting.
package session

import "github.com/dgrijalva/jwt-go"

// LocalsKey is where the middleware stores the resolved session on the
// request context.
const LocalsKey = "session"

// Session identifies the authenticated user for one request.
type Session struct {
	UserID   string
	Username string
	Name     string
	Role     string
}

// FromClaims builds a Session from verified JWT claims. Missing claims
// resolve to empty fields rather than errors; callers decide whether an
// anonymous session is acceptable.
func FromClaims(claims jwt.MapClaims) Session {
	return Session{
		UserID:   stringClaim(claims, "user_id"),
		Username: stringClaim(claims, "username"),
		Name:     stringClaim(claims, "name"),
		Role:     stringClaim(claims, "role"),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

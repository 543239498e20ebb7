package auth

import "github.com/gin-gonic/gin"

const identityKey = "identity"

// Identity is the request's resolved caller. The zero value means anonymous;
// a non-empty UserID means the bearer token checked out. Handlers branch on
// the two variants instead of relying on guard middleware substitution.
type Identity struct {
	UserID string
	Email  string
}

func (id Identity) Anonymous() bool {
	return id.UserID == ""
}

// SetIdentity attaches the resolved identity to the request context. Called
// exactly once per request, by the identity-resolution middleware.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the request's identity. Requests that never went
// through identity resolution read as anonymous.
func IdentityFrom(c *gin.Context) Identity {
	val, ok := c.Get(identityKey)
	if !ok {
		return Identity{}
	}
	id, ok := val.(Identity)
	if !ok {
		return Identity{}
	}
	return id
}

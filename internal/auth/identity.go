package auth

import (
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller, loaded fresh from the users table on
// every request.
type Identity struct {
	UserID   uint
	Username string
	Role     model.Role
	GroupID  *uint
}

func IdentityFromUser(u *model.User) Identity {
	return Identity{UserID: u.ID, Username: u.Username, Role: u.Role, GroupID: u.GroupID}
}

func (i Identity) IsAdmin() bool { return i.Role == model.RoleAdmin }

// CanManage reports whether the caller may edit a test written by authorID.
func (i Identity) CanManage(authorID uint) bool {
	return i.Role == model.RoleAdmin || (i.Role == model.RoleTeacher && i.UserID == authorID)
}

const identityKey = "auth.identity"

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity stored by the middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

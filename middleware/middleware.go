package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/storefronthq/storefront/backend/auth"
)

const USER_ID_KEY = "user_ID"
const USER_ROLE_KEY = "user_role"

// CurrentActor rebuilds the resolved identity from the gin context
// keys set by the auth middleware.
func CurrentActor(c *gin.Context) (auth.Actor, bool) {
	userId, exists := c.Get(USER_ID_KEY)
	if !exists {
		return auth.Actor{}, false
	}
	role, exists := c.Get(USER_ROLE_KEY)
	if !exists {
		return auth.Actor{}, false
	}
	return auth.Actor{
		Id:   cast.ToUint(userId),
		Role: auth.Role(cast.ToString(role)),
	}, true
}

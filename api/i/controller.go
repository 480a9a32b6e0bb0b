package i

import "github.com/gin-gonic/gin"

// Controller is one resource of the maze API, such as players or runs.
// RegisterPublic receives the group open to anyone (sign-up, leaderboard);
// RegisterProtected receives the group behind the JWT middleware, where the
// player ID is available in the request context.
type Controller interface {
	RegisterPublic(route *gin.RouterGroup)
	RegisterProtected(route *gin.RouterGroup)
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ins-V/simple-todo-list/models"
)

const currentUserKey = "currentUser"

// Middleware returns a gin handler that extracts and validates a Bearer JWT
// from the Authorization header and stores the resolved user in the request
// context. Rejections carry a WWW-Authenticate challenge for bearer-scheme
// retry.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}
		u, err := svc.CheckToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user stored by Middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
}

package middlewares

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/rentfolio_backend/config"
	"github.com/rentfolio/rentfolio_backend/models"
	"github.com/rentfolio/rentfolio_backend/utils"
)

// retrieve user from redis or db
func getUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return nil, err
	}

	if !exists {

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Take(&user).Error; err != nil {
			return nil, err
		}

		tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
		if err != nil {
			tokenLifespan = 24
		}

		if err := config.SetRedisObject("User:"+user.Username, &user, time.Duration(tokenLifespan)*time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// IdentityMiddleware resolves the session username into the tenant identity
// (business id, user id/name, admin flag) carried on the request context.
// Requests without a session pass through; handlers decide what needs auth.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := utils.GetUsernameFromContext(c.Request.Context())
		if !ok || username == "" {
			c.Next()
			return
		}

		user, err := getUser(c.Request.Context(), username)
		if err != nil {
			logger := config.GetLogger()
			config.LogError(logger, "identityMiddleware.go", "IdentityMiddleware", "getUser", username, err)
			c.Next()
			return
		}

		ctx := utils.SetBusinessIdInContext(c.Request.Context(), user.BusinessId)
		ctx = utils.SetUserIdInContext(ctx, user.ID)
		ctx = utils.SetUserNameInContext(ctx, user.Name)
		if user.Role == models.UserRoleAdmin {
			ctx = utils.SetIsAdminInContext(ctx, true)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/user"
)

//go:generate mockgen -source=auth_middleware.go -destination=mocks/mock_auth_middleware.go

type UserProvisioner interface {
	EnsureUser(ctx context.Context, account identity.Account) (user.User, error)
}

const (
	sessionKey = "session"
	accountKey = "account"
)

// FirebaseAuth verifies the bearer ID token and stores the caller's session.
// The role always comes from our users table.
func FirebaseAuth(verifier identity.TokenVerifier, users UserProvisioner) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)

		if !found || len(token) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			return
		}

		account, err := verifier.VerifyIDToken(c.Request.Context(), token)

		if err != nil {
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			return
		}

		u, err := users.EnsureUser(c.Request.Context(), *account)

		if err != nil {
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			return
		}

		c.Set(sessionKey, u.Session())
		c.Set(accountKey, *account)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			return
		}
	}
}

func currentSession(c *gin.Context) identity.Session {
	return c.MustGet(sessionKey).(identity.Session)
}

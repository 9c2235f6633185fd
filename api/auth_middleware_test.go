package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/api"
	mock_api "github.com/hanksha/sports-club-backend/api/mocks"
	"github.com/hanksha/sports-club-backend/identity"
	mock_identity "github.com/hanksha/sports-club-backend/identity/mocks"
	"github.com/hanksha/sports-club-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_identity.MockTokenVerifier, *mock_api.MockUserProvisioner) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	verifier := mock_identity.NewMockTokenVerifier(ctrl)
	users := mock_api.NewMockUserProvisioner(ctrl)

	rg := router.Group("")
	rg.Use(api.FirebaseAuth(verifier, users))
	rg.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, c.MustGet("session"))
	})
	rg.GET("/admin", api.AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, ctrl, verifier, users
}

func requestWithToken(router *gin.Engine, path, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)

	if len(header) != 0 {
		req.Header.Set("Authorization", header)
	}

	router.ServeHTTP(w, req)

	return w
}

func TestFirebaseAuth(t *testing.T) {
	account := &identity.Account{UID: "u1", Email: "ann@club.test", DisplayName: "Ann"}

	t.Run("missing token", func(t *testing.T) {
		router, ctrl, _, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		w := requestWithToken(router, "/whoami", "")

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("not a bearer token", func(t *testing.T) {
		router, ctrl, _, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		w := requestWithToken(router, "/whoami", "Basic abc")

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		router, ctrl, verifier, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyIDToken(gomock.Any(), "bad").Return(nil, identity.ErrTokenExpired).Times(1)

		w := requestWithToken(router, "/whoami", "Bearer bad")

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})

	t.Run("role comes from the users table", func(t *testing.T) {
		router, ctrl, verifier, users := setupAuthRouter(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyIDToken(gomock.Any(), "good").Return(account, nil).Times(1)
		users.EXPECT().EnsureUser(gomock.Any(), *account).Return(user.User{ID: "u1", Email: "ann@club.test", DisplayName: "Ann", Role: identity.RoleMember}, nil).Times(1)

		w := requestWithToken(router, "/whoami", "Bearer good")

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"uid":"u1","email":"ann@club.test","displayName":"Ann","role":"member"}`, w.Body.String())
	})

	t.Run("user store failure", func(t *testing.T) {
		router, ctrl, verifier, users := setupAuthRouter(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyIDToken(gomock.Any(), "good").Return(account, nil).Times(1)
		users.EXPECT().EnsureUser(gomock.Any(), *account).Return(user.User{}, assert.AnError).Times(1)

		w := requestWithToken(router, "/whoami", "Bearer good")

		assert.Equal(t, 500, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	account := &identity.Account{UID: "u1", Email: "ann@club.test"}

	t.Run("member is rejected", func(t *testing.T) {
		router, ctrl, verifier, users := setupAuthRouter(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyIDToken(gomock.Any(), "good").Return(account, nil).Times(1)
		users.EXPECT().EnsureUser(gomock.Any(), *account).Return(user.User{ID: "u1", Role: identity.RoleMember}, nil).Times(1)

		w := requestWithToken(router, "/admin", "Bearer good")

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("admin passes", func(t *testing.T) {
		router, ctrl, verifier, users := setupAuthRouter(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyIDToken(gomock.Any(), "good").Return(account, nil).Times(1)
		users.EXPECT().EnsureUser(gomock.Any(), *account).Return(user.User{ID: "u1", Role: identity.RoleAdmin}, nil).Times(1)

		w := requestWithToken(router, "/admin", "Bearer good")

		assert.Equal(t, 200, w.Code)
	})
}

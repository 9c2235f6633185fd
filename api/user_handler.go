package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/user"
)

//go:generate mockgen -source=user_handler.go -destination=mocks/mock_user_handler.go

type UserService interface {
	RecordLogin(ctx context.Context, account identity.Account) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetRole(ctx context.Context, email string) (identity.Role, error)
	ListUsers(ctx context.Context, search string) ([]user.User, error)
	ListMembers(ctx context.Context, search string) ([]user.User, error)
	MakeMember(ctx context.Context, email string) (user.User, error)
	SetRole(ctx context.Context, id string, role identity.Role) (user.User, error)
	RemoveMember(ctx context.Context, id string) (user.User, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.POST("/login", h.Login)
	rg.GET("/role", h.GetRole)
	rg.GET("", adminOnly, h.List)
	rg.GET("/members", adminOnly, h.ListMembers)
	rg.DELETE("/members/:id", adminOnly, h.RemoveMember)
	rg.PATCH("/make-member", adminOnly, h.MakeMember)
	rg.GET("/:email", h.GetByEmail)
	rg.PATCH("/:id", adminOnly, h.SetRole)
}

// Login refreshes the profile from the verified token and stamps lastLogin.
func (h *UserHandler) Login(c *gin.Context) {
	account := c.MustGet(accountKey).(identity.Account)

	u, err := h.service.RecordLogin(c.Request.Context(), account)

	if err != nil {
		abortWithError(c, err, "failed to record login")
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) GetRole(c *gin.Context) {
	email, ok := ownEmail(c, c.Query("email"))

	if !ok {
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), email)

	if err != nil {
		abortWithError(c, err, "failed to get role")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"email": email, "role": role})
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email, ok := ownEmail(c, c.Param("email"))

	if !ok {
		return
	}

	u, err := h.service.GetByEmail(c.Request.Context(), email)

	if err != nil {
		abortWithError(c, err, "failed to fetch user")
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), c.Query("search"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve users")
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

func (h *UserHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context(), c.Query("search"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve members")
		return
	}

	c.IndentedJSON(http.StatusOK, members)
}

func (h *UserHandler) MakeMember(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	u, err := h.service.MakeMember(c.Request.Context(), body.Email)

	if err != nil {
		abortWithError(c, err, "failed to promote user")
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) SetRole(c *gin.Context) {
	var body struct {
		Role identity.Role `json:"role"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	u, err := h.service.SetRole(c.Request.Context(), c.Param("id"), body.Role)

	if err != nil {
		abortWithError(c, err, "failed to update role")
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

func (h *UserHandler) RemoveMember(c *gin.Context) {
	u, err := h.service.RemoveMember(c.Request.Context(), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to remove member")
		return
	}

	c.IndentedJSON(http.StatusOK, u)
}

// ownEmail resolves the email a request is about. Only admins may look at
// someone else; an empty value means the caller.
func ownEmail(c *gin.Context, requested string) (string, bool) {
	session := currentSession(c)
	requested = strings.TrimSpace(requested)

	if len(requested) == 0 {
		return session.Email, true
	}

	if !session.IsAdmin() && !strings.EqualFold(requested, session.Email) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return "", false
	}

	return requested, true
}

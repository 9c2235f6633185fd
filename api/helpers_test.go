package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/identity"
)

var (
	member = identity.Session{UserID: "u1", Email: "ann@club.test", DisplayName: "Ann", Role: identity.RoleMember}
	admin  = identity.Session{UserID: "a1", Email: "boss@club.test", DisplayName: "Boss", Role: identity.RoleAdmin}
)

func setSessionInContext(session identity.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", session)
		c.Next()
	}
}

func newGroup(session identity.Session, path string) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rg := router.Group(path)
	rg.Use(setSessionInContext(session))

	return router, rg
}

func serve(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func indented(t *testing.T, v any) string {
	t.Helper()

	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		t.Fatal(err)
	}

	return string(raw)
}

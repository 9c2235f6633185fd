package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/identity"
)

type Handlers struct {
	Courts        *CourtHandler
	Bookings      *BookingHandler
	Coupons       *CouponHandler
	Users         *UserHandler
	Payments      *PaymentHandler
	Announcements *AnnouncementHandler
	Admin         *AdminHandler
}

// NewRouter mounts every handler. Health, public courts and the processor
// webhook are the only routes without a bearer token.
func NewRouter(h Handlers, verifier identity.TokenVerifier, users UserProvisioner, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	h.Courts.RegisterPublic(r.Group("/public/courts"))
	h.Payments.RegisterWebhook(r.Group("/stripe"))

	secured := r.Group("")
	secured.Use(FirebaseAuth(verifier, users))

	h.Courts.Register(secured.Group("/allCourts"))
	h.Bookings.Register(secured.Group("/bookings"))
	h.Coupons.Register(secured)
	h.Users.Register(secured.Group("/users"))
	h.Payments.Register(secured)
	h.Announcements.Register(secured.Group("/announcements"))
	h.Admin.Register(secured.Group("/admin"))

	return r
}

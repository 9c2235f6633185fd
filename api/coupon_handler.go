package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/coupon"
)

//go:generate mockgen -source=coupon_handler.go -destination=mocks/mock_coupon_handler.go

type CouponService interface {
	ValidateCoupon(ctx context.Context, code string) (coupon.Coupon, error)
	CreateCoupon(ctx context.Context, c coupon.Coupon) (coupon.Coupon, error)
	ListCoupons(ctx context.Context) ([]coupon.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

type CouponHandler struct {
	service CouponService
}

func NewCouponHandler(service CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

func (h *CouponHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("/coupons", adminOnly, h.List)
	rg.POST("/coupons", adminOnly, h.Create)
	rg.DELETE("/coupons/:id", adminOnly, h.Delete)
	rg.POST("/validate-coupon", h.Validate)
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.service.ListCoupons(c.Request.Context())

	if err != nil {
		abortWithError(c, err, "failed to retrieve coupons")
		return
	}

	c.IndentedJSON(http.StatusOK, coupons)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var body coupon.Coupon

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	created, err := h.service.CreateCoupon(c.Request.Context(), body)

	if err != nil {
		abortWithError(c, err, "failed to create coupon")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, "failed to delete coupon")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "coupon deleted"})
}

// Validate only checks a code. Redemption happens when the payment is recorded.
func (h *CouponHandler) Validate(c *gin.Context) {
	var body struct {
		CouponCode string `json:"couponCode"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	valid, err := h.service.ValidateCoupon(c.Request.Context(), body.CouponCode)

	if err != nil {
		abortWithError(c, err, "failed to validate coupon")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"valid":              true,
		"code":               valid.Code,
		"discountPercentage": valid.DiscountPercentage,
	})
}

package api_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/api"
	mock_api "github.com/hanksha/sports-club-backend/api/mocks"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCouponRouter(t *testing.T, session identity.Session) (*gin.Engine, *gomock.Controller, *mock_api.MockCouponService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	router, rg := newGroup(session, "")
	mockService := mock_api.NewMockCouponService(ctrl)
	api.NewCouponHandler(mockService).Register(rg)

	return router, ctrl, mockService
}

func TestValidateCoupon(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		router, ctrl, mockService := setupCouponRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().ValidateCoupon(gomock.Any(), "summer20").Return(coupon.Coupon{Code: "SUMMER20", DiscountPercentage: 20}, nil).Times(1)

		w := serve(t, router, "POST", "/validate-coupon", `{"couponCode":"summer20"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"valid":true,"code":"SUMMER20","discountPercentage":20}`, w.Body.String())
	})

	t.Run("expired", func(t *testing.T) {
		router, ctrl, mockService := setupCouponRouter(t, member)
		defer ctrl.Finish()

		rejection := &coupon.RejectionError{Reason: coupon.ReasonExpired, Message: "coupon has expired"}
		mockService.EXPECT().ValidateCoupon(gomock.Any(), "OLD").Return(coupon.Coupon{}, rejection).Times(1)

		w := serve(t, router, "POST", "/validate-coupon", `{"couponCode":"OLD"}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"coupon has expired","message":"coupon has expired","reason":"expired"}`, w.Body.String())
	})

	t.Run("missing code", func(t *testing.T) {
		router, ctrl, mockService := setupCouponRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().ValidateCoupon(gomock.Any(), "").Return(coupon.Coupon{}, coupon.ErrCodeRequired).Times(1)

		w := serve(t, router, "POST", "/validate-coupon", `{}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"coupon code is required"}`, w.Body.String())
	})
}

func TestCouponAdministration(t *testing.T) {
	t.Run("create duplicate", func(t *testing.T) {
		router, ctrl, mockService := setupCouponRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().CreateCoupon(gomock.Any(), coupon.Coupon{Code: "SUMMER20", DiscountPercentage: 20}).Return(coupon.Coupon{}, coupon.ErrDuplicateCode).Times(1)

		w := serve(t, router, "POST", "/coupons", `{"code":"SUMMER20","discountPercentage":20}`)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"coupon code already exists"}`, w.Body.String())
	})

	t.Run("list and delete", func(t *testing.T) {
		router, ctrl, mockService := setupCouponRouter(t, admin)
		defer ctrl.Finish()

		coupons := []coupon.Coupon{{ID: "k1", Code: "SUMMER20", DiscountPercentage: 20}}
		mockService.EXPECT().ListCoupons(gomock.Any()).Return(coupons, nil).Times(1)
		mockService.EXPECT().DeleteCoupon(gomock.Any(), "k1").Return(nil).Times(1)

		w := serve(t, router, "GET", "/coupons", nil)
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, indented(t, coupons), w.Body.String())

		w = serve(t, router, "DELETE", "/coupons/k1", nil)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("member is rejected", func(t *testing.T) {
		router, ctrl, _ := setupCouponRouter(t, member)
		defer ctrl.Finish()

		w := serve(t, router, "GET", "/coupons", nil)

		assert.Equal(t, 403, w.Code)
	})
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/announcement"
	"github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/payment"
	"github.com/hanksha/sports-club-backend/user"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{booking.ErrBookingNotFound, http.StatusNotFound},
	{court.ErrCourtNotFound, http.StatusNotFound},
	{coupon.ErrCouponNotFound, http.StatusNotFound},
	{user.ErrUserNotFound, http.StatusNotFound},
	{announcement.ErrAnnouncementNotFound, http.StatusNotFound},
	{payment.ErrPaymentNotFound, http.StatusNotFound},

	{booking.ErrNotAllowed, http.StatusForbidden},

	{booking.ErrSlotTaken, http.StatusConflict},
	{coupon.ErrDuplicateCode, http.StatusConflict},

	{booking.ErrInvalidBookingState, http.StatusBadRequest},
	{booking.ErrCourtUnavailable, http.StatusBadRequest},
	{booking.ErrPriceMismatch, http.StatusBadRequest},
	{booking.ErrDateRequired, http.StatusBadRequest},
	{booking.ErrInvalidDate, http.StatusBadRequest},
	{booking.ErrDateInPast, http.StatusBadRequest},
	{booking.ErrNoSlots, http.StatusBadRequest},
	{booking.ErrUnknownSlot, http.StatusBadRequest},
	{court.ErrInvalidCourt, http.StatusBadRequest},
	{coupon.ErrCodeRequired, http.StatusBadRequest},
	{coupon.ErrInvalidCoupon, http.StatusBadRequest},
	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrNotMember, http.StatusBadRequest},
	{announcement.ErrInvalidAnnouncement, http.StatusBadRequest},
	{payment.ErrAmountMismatch, http.StatusBadRequest},
	{payment.ErrPaymentNotSucceeded, http.StatusBadRequest},
	{payment.ErrIntentMismatch, http.StatusBadRequest},
	{payment.ErrInvalidSignature, http.StatusBadRequest},

	{payment.ErrGateway, http.StatusBadGateway},
}

// abortWithError records err on the context and writes the matching JSON
// error. Unknown errors become a 500 carrying fallback.
func abortWithError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	var rejection *coupon.RejectionError

	if errors.As(err, &rejection) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   rejection.Message,
			"message": rejection.Message,
			"reason":  rejection.Reason,
		})
		return
	}

	var cardErr *payment.CardError

	if errors.As(err, &cardErr) {
		c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": cardErr.Message, "code": cardErr.Code})
		return
	}

	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			message := err.Error()

			// gateway details stay in the logs
			if known.status == http.StatusBadGateway {
				message = known.err.Error()
			}

			c.AbortWithStatusJSON(known.status, gin.H{"error": message})
			return
		}
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func abortBadBody(c *gin.Context, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
}

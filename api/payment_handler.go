package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/payment"
)

//go:generate mockgen -source=payment_handler.go -destination=mocks/mock_payment_handler.go

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, session identity.Session, req payment.IntentRequest) (payment.Intent, error)
	RecordPayment(ctx context.Context, session identity.Session, req payment.RecordRequest) (payment.Payment, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ListPayments(ctx context.Context, session identity.Session, email string) ([]payment.Payment, error)
}

const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreateIntent)
	rg.POST("/payments", h.Record)
	rg.GET("/payments", h.List)
}

// RegisterWebhook mounts the processor callback, authenticated by its
// signature header instead of a bearer token.
func (h *PaymentHandler) RegisterWebhook(rg *gin.RouterGroup) {
	rg.POST("/webhook", h.Webhook)
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req payment.IntentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadBody(c, err)
		return
	}

	intent, err := h.service.CreatePaymentIntent(c.Request.Context(), currentSession(c), req)

	if err != nil {
		abortWithError(c, err, "failed to create payment intent")
		return
	}

	c.IndentedJSON(http.StatusOK, intent)
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req payment.RecordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadBody(c, err)
		return
	}

	recorded, err := h.service.RecordPayment(c.Request.Context(), currentSession(c), req)

	if err != nil {
		abortWithError(c, err, "failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, recorded)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context(), currentSession(c), c.Query("email"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve payments")
		return
	}

	c.IndentedJSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))

	if err != nil {
		c.Error(err)
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "failed to read body"})
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		abortWithError(c, err, "failed to handle event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

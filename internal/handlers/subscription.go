package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/subscription"
)

type SubscriptionHandler struct {
	subs *subscription.Service
}

func NewSubscriptionHandler(subs *subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Active returns the caller's active subscription, or null when there is none.
func (h *SubscriptionHandler) Active(c *gin.Context) {
	sub, err := h.subs.Active(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	sub, err := h.subs.Create(c.Request.Context(), subscription.CreateInput{
		UserID:        middleware.UserID(c),
		PlanType:      req.PlanType,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
		AutoRenew:     req.AutoRenew,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	cancelled, err := h.subs.Cancel(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active subscription found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

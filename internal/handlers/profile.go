package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/account"
)

type ProfileHandler struct {
	accounts *account.Service
}

func NewProfileHandler(accounts *account.Service) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	user, err := h.accounts.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.accounts.Update(c.Request.Context(), middleware.UserID(c), account.UpdateInput{
		Name:          req.Name,
		Age:           req.Age,
		Bio:           req.Bio,
		Location:      req.Location,
		Gender:        req.Gender,
		LookingFor:    req.LookingFor,
		ProfilePicURL: req.ProfilePicURL,
		Interests:     req.Interests,
		Photos:        req.Photos,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

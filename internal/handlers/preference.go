package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/preference"
)

type PreferenceHandler struct {
	prefs *preference.Service
}

func NewPreferenceHandler(prefs *preference.Service) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// Get returns the stored preference set, substituting the display
// defaults when the user never saved one.
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	stored, err := h.prefs.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, dto.PreferencesResponse{
				UserID:    userID,
				MinAge:    preference.DefaultMinAge,
				MaxAge:    preference.DefaultMaxAge,
				Distance:  preference.DefaultDistance,
				Interests: []string{},
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPreferencesResponse(stored))
}

func (h *PreferenceHandler) Save(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	prefs, err := h.prefs.Upsert(c.Request.Context(), preference.UpsertInput{
		UserID:    middleware.UserID(c),
		MinAge:    req.MinAge,
		MaxAge:    req.MaxAge,
		Distance:  req.Distance,
		Gender:    req.Gender,
		Interests: req.Interests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPreferencesResponse(prefs))
}

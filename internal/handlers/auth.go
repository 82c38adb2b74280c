package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/service/account"
	"github.com/jhony29a/bliss/pkg/auth"
)

type AuthHandler struct {
	appCtx     *app.AppContext
	accounts   *account.Service
	jwtManager *auth.JWTManager
}

func NewAuthHandler(appCtx *app.AppContext, accounts *account.Service, jwtMgr *auth.JWTManager) *AuthHandler {
	return &AuthHandler{appCtx: appCtx, accounts: accounts, jwtManager: jwtMgr}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		Username:      req.Username,
		Password:      req.Password,
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

	token, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  dto.NewUserResponse(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.NewUserResponse(user),
		"token": token,
	})
}

// Logout blacklists the presented token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	if err := h.appCtx.RedisCache.BlacklistToken(c.Request.Context(), rawToken, time.Until(exp)); err != nil {
		h.appCtx.Logger.Error("failed to blacklist token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "logout failed"})
		return
	}

	c.Status(http.StatusOK)
}

// Session reports whether the presented token is still valid, and for
// whom. Never fails; an unauthenticated caller gets authenticated=false.
func (h *AuthHandler) Session(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	if blacklisted, err := h.appCtx.RedisCache.IsTokenBlacklisted(c.Request.Context(), rawToken); err != nil || blacklisted {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	userID, err := h.jwtManager.UserID(rawToken)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"isVip":    user.IsVip,
		},
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/discovery"
	"github.com/jhony29a/bliss/internal/service/matching"
)

// likedYouPageSize bounds the incoming-like listing page.
const likedYouPageSize = 20

type MatchHandler struct {
	matches   *matching.Service
	discovery *discovery.Service
}

func NewMatchHandler(matches *matching.Service, disc *discovery.Service) *MatchHandler {
	return &MatchHandler{matches: matches, discovery: disc}
}

func (h *MatchHandler) PotentialMatches(c *gin.Context) {
	users, err := h.discovery.PotentialMatches(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (h *MatchHandler) Swipe(c *gin.Context) {
	var req dto.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	swipe, err := h.matches.RecordSwipe(c.Request.Context(), middleware.UserID(c), req.TargetID, *req.Liked)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": gin.H{
		"id":        swipe.ID,
		"userId1":   swipe.UserID1,
		"userId2":   swipe.UserID2,
		"matched":   swipe.Matched,
		"createdAt": swipe.CreatedAt,
	}})
}

func (h *MatchHandler) Matches(c *gin.Context) {
	entries, err := h.matches.Matches(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.MatchResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.MatchResponse{
			ID:        e.Swipe.ID,
			UserID1:   e.Swipe.UserID1,
			UserID2:   e.Swipe.UserID2,
			Matched:   e.Swipe.Matched,
			CreatedAt: e.Swipe.CreatedAt,
			User:      dto.NewUserResponse(&e.User),
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *MatchHandler) LikedYou(c *gin.Context) {
	var token *string
	if t := c.Query("paginationToken"); t != "" {
		token = &t
	}

	likers, nextToken, err := h.matches.LikedYou(c.Request.Context(), middleware.UserID(c), token, likedYouPageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.LikerResponse, len(likers))
	for i, l := range likers {
		out[i] = dto.LikerResponse{
			User:          dto.NewUserResponse(&l.User),
			UnixTimestamp: l.LikedAtMs,
		}
	}

	resp := gin.H{"likers": out}
	if nextToken != nil {
		resp["nextPaginationToken"] = *nextToken
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchHandler) LikedYouCount(c *gin.Context) {
	count, err := h.matches.LikedYouCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

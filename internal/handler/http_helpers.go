package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/artgallery/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// sessionUserID returns the logged-in user id, or 0.
func sessionUserID(c *gin.Context) uint {
	switch v := sessions.Default(c).Get(sessionUserKey).(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case uint64:
		return uint(v)
	}
	return 0
}

// resolveUserID prefers the id given in the payload and falls back to the session.
func resolveUserID(c *gin.Context, fromPayload uint) uint {
	if fromPayload != 0 {
		return fromPayload
	}
	return sessionUserID(c)
}

// requireKnownUser rejects ids that match no account before anything references them.
func (a *API) requireKnownUser(c *gin.Context, userID uint) bool {
	if userID == 0 {
		respondError(c, http.StatusBadRequest, "user_id is required")
		return false
	}
	exists, err := a.users.Exists(userID)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to look up user")
		return false
	}
	if !exists {
		respondError(c, http.StatusBadRequest, "Unknown user")
		return false
	}
	return true
}

// respondServiceError maps service sentinel errors to status codes.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrContactEmpty):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAttachmentTooLarge):
		respondError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrArtworkNotFound), errors.Is(err, service.ErrBlogPostNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

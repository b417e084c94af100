package handler

import (
	"net/http"

	"github.com/artgallery/internal/db"
	"github.com/artgallery/internal/service"
	"github.com/gin-gonic/gin"
)

type artworkPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category" binding:"required"`
	UserID      uint   `json:"user_id"`
}

type feedbackPayload struct {
	Content   string `json:"content" binding:"required"`
	UserID    uint   `json:"user_id"`
	ArtworkID uint   `json:"artwork_id" binding:"required"`
}

type artworkResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	UserID      uint   `json:"user_id"`
}

func newArtworkResponse(item db.Artwork) artworkResponse {
	return artworkResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Image:       item.Image,
		Category:    item.Category,
		UserID:      item.UserID,
	}
}

// ListArtworks returns every artwork as a JSON array.
func (a *API) ListArtworks(c *gin.Context) {
	items, err := a.artworks.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load artworks")
		return
	}

	out := make([]artworkResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newArtworkResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// CreateArtwork uploads a new artwork record.
func (a *API) CreateArtwork(c *gin.Context) {
	var payload artworkPayload
	if !bindJSON(c, &payload, "title, description, image and category are required") {
		return
	}

	userID := resolveUserID(c, payload.UserID)
	if !a.requireKnownUser(c, userID) {
		return
	}

	item, err := a.artworks.Create(service.ArtworkInput{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		Category:    payload.Category,
		UserID:      userID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to upload artwork")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Artwork uploaded successfully", "id": item.ID})
}

// CreateFeedback leaves feedback on an artwork.
func (a *API) CreateFeedback(c *gin.Context) {
	var payload feedbackPayload
	if !bindJSON(c, &payload, "content and artwork_id are required") {
		return
	}

	userID := resolveUserID(c, payload.UserID)
	if !a.requireKnownUser(c, userID) {
		return
	}

	item, err := a.feedback.Create(service.FeedbackInput{
		Content:   payload.Content,
		UserID:    userID,
		ArtworkID: payload.ArtworkID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully", "id": item.ID})
}

type feedbackResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	UserID    uint   `json:"user_id"`
	ArtworkID uint   `json:"artwork_id"`
}

// ListFeedback returns the feedback left on one artwork, oldest first.
func (a *API) ListFeedback(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := a.artworks.Get(id); err != nil {
		respondServiceError(c, err, "Failed to load artwork")
		return
	}

	items, err := a.feedback.ListForArtwork(id)
	if err != nil {
		respondServiceError(c, err, "Failed to load feedback")
		return
	}

	out := make([]feedbackResponse, 0, len(items))
	for _, item := range items {
		out = append(out, feedbackResponse{
			ID:        item.ID,
			Content:   item.Content,
			UserID:    item.UserID,
			ArtworkID: item.ArtworkID,
		})
	}
	c.JSON(http.StatusOK, out)
}

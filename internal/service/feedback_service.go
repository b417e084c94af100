package service

import (
	"fmt"
	"strings"

	"github.com/artgallery/internal/db"
	"gorm.io/gorm"
)

// FeedbackService stores visitor feedback on artworks.
type FeedbackService struct {
	db       *gorm.DB
	artworks *ArtworkService
}

// FeedbackInput is the payload for leaving feedback.
type FeedbackInput struct {
	Content   string
	UserID    uint
	ArtworkID uint
}

// NewFeedbackService creates a FeedbackService instance.
func NewFeedbackService(gdb *gorm.DB) *FeedbackService {
	return &FeedbackService{db: gdb, artworks: NewArtworkService(gdb)}
}

// Create records feedback; the referenced artwork must exist.
func (s *FeedbackService) Create(input FeedbackInput) (*db.Feedback, error) {
	content := strings.TrimSpace(input.Content)
	if err := requireFields("content", content); err != nil {
		return nil, err
	}
	if input.UserID == 0 || input.ArtworkID == 0 {
		return nil, fmt.Errorf("%w: user_id and artwork_id are required", ErrInvalidInput)
	}

	if _, err := s.artworks.Get(input.ArtworkID); err != nil {
		return nil, err
	}

	item := db.Feedback{
		Content:   content,
		UserID:    input.UserID,
		ArtworkID: input.ArtworkID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return &item, nil
}

// ListForArtwork returns the feedback left on one artwork, oldest first.
func (s *FeedbackService) ListForArtwork(artworkID uint) ([]db.Feedback, error) {
	var items []db.Feedback
	if err := s.db.Where("artwork_id = ?", artworkID).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return items, nil
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artgallery/internal/db"
	"gorm.io/gorm"
)

// ArtworkService handles artwork listing and uploads.
type ArtworkService struct {
	db *gorm.DB
}

// ArtworkInput represents fields accepted when creating an artwork.
type ArtworkInput struct {
	Title       string
	Description string
	Image       string
	Category    string
	UserID      uint
}

// NewArtworkService creates an ArtworkService instance.
func NewArtworkService(gdb *gorm.DB) *ArtworkService {
	return &ArtworkService{db: gdb}
}

// List returns every artwork in insertion order.
func (s *ArtworkService) List() ([]db.Artwork, error) {
	var items []db.Artwork
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return items, nil
}

// Get fetches an artwork by id.
func (s *ArtworkService) Get(id uint) (*db.Artwork, error) {
	var item db.Artwork
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	return &item, nil
}

// Create inserts a new artwork.
func (s *ArtworkService) Create(input ArtworkInput) (*db.Artwork, error) {
	item := db.Artwork{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		Category:    strings.TrimSpace(input.Category),
		UserID:      input.UserID,
	}
	if err := requireFields("title", item.Title, "description", item.Description, "image", item.Image, "category", item.Category); err != nil {
		return nil, err
	}
	if item.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}
	return &item, nil
}

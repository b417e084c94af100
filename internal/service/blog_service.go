package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artgallery/internal/db"
	"gorm.io/gorm"
)

// BlogService handles blog post CRUD.
type BlogService struct {
	db *gorm.DB
}

// BlogPostInput represents fields accepted when creating a blog post.
type BlogPostInput struct {
	Title   string
	Content string
	UserID  uint
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// List returns every blog post in insertion order.
func (s *BlogService) List() ([]db.BlogPost, error) {
	var items []db.BlogPost
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return items, nil
}

// Get fetches a blog post together with its author.
func (s *BlogService) Get(id uint) (*db.BlogPost, error) {
	var item db.BlogPost
	if err := s.db.Preload("User").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &item, nil
}

// Create inserts a new blog post.
func (s *BlogService) Create(input BlogPostInput) (*db.BlogPost, error) {
	item := db.BlogPost{
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		UserID:  input.UserID,
	}
	if err := requireFields("title", item.Title, "content", item.Content); err != nil {
		return nil, err
	}
	if item.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &item, nil
}

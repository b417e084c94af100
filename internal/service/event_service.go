package service

import (
	"fmt"
	"strings"

	"github.com/artgallery/internal/db"
	"gorm.io/gorm"
)

// EventService handles the events calendar.
type EventService struct {
	db *gorm.DB
}

// EventInput represents fields accepted when creating an event.
type EventInput struct {
	Title       string
	Description string
	Date        string
}

// NewEventService creates an EventService instance.
func NewEventService(gdb *gorm.DB) *EventService {
	return &EventService{db: gdb}
}

// List returns every event in insertion order. Dates are free-form and not sorted.
func (s *EventService) List() ([]db.Event, error) {
	var items []db.Event
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

// Create inserts a new event.
func (s *EventService) Create(input EventInput) (*db.Event, error) {
	item := db.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Date:        strings.TrimSpace(input.Date),
	}
	if err := requireFields("title", item.Title, "description", item.Description, "date", item.Date); err != nil {
		return nil, err
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &item, nil
}

package handler

import (
	"net/http"

	"github.com/artgallery/internal/db"
	"github.com/artgallery/internal/service"
	"github.com/gin-gonic/gin"
)

type eventPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type eventResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func newEventResponse(item db.Event) eventResponse {
	return eventResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Date:        item.Date,
	}
}

// ListEvents returns the calendar as a JSON array.
func (a *API) ListEvents(c *gin.Context) {
	items, err := a.events.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load events")
		return
	}

	out := make([]eventResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newEventResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// CreateEvent adds an event to the calendar.
func (a *API) CreateEvent(c *gin.Context) {
	var payload eventPayload
	if !bindJSON(c, &payload, "title, description and date are required") {
		return
	}

	item, err := a.events.Create(service.EventInput{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "id": item.ID})
}

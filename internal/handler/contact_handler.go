package handler

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/artgallery/internal/service"
	"github.com/gin-gonic/gin"
)

// SubmitContact stores a multipart contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Contact form must be sent as multipart/form-data")
		return
	}

	input := service.ContactInput{
		Files:      form.File,
		RemoteAddr: c.ClientIP(),
	}
	// multipart.Form 以 map 保存字段，按字段名排序保证入库顺序稳定
	names := make([]string, 0, len(form.Value))
	for name := range form.Value {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range form.Value[name] {
			input.Fields = append(input.Fields, service.ContactField{Name: name, Value: value})
		}
	}

	message, err := a.contacts.Submit(input)
	if err != nil {
		respondServiceError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received", "id": message.ID})
}

type contactAttachmentResponse struct {
	Field string `json:"field"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Size  int64  `json:"size"`
}

type contactMessageResponse struct {
	ID          uint                        `json:"id"`
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
	Message     string                      `json:"message"`
	Fields      map[string]string           `json:"fields,omitempty"`
	Attachments []contactAttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
}

// ListContactMessages 返回最近的联系表单提交，仅限已登录用户
func (a *API) ListContactMessages(c *gin.Context) {
	if sessionUserID(c) == 0 {
		respondError(c, http.StatusUnauthorized, "Login required")
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	items, err := a.contacts.List(limit)
	if err != nil {
		respondServiceError(c, err, "Failed to load messages")
		return
	}

	out := make([]contactMessageResponse, 0, len(items))
	for _, item := range items {
		resp := contactMessageResponse{
			ID:        item.ID,
			Name:      item.Name,
			Email:     item.Email,
			Message:   item.Message,
			CreatedAt: item.CreatedAt,
		}
		if len(item.Fields) > 0 {
			resp.Fields = make(map[string]string, len(item.Fields))
			for _, field := range item.Fields {
				resp.Fields[field.Name] = field.Value
			}
		}
		for _, att := range item.Attachments {
			resp.Attachments = append(resp.Attachments, contactAttachmentResponse{
				Field: att.FieldName,
				Name:  att.OriginalName,
				URL:   att.URL,
				Size:  att.Size,
			})
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

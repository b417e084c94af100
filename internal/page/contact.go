package page

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
)

// Notification texts shown after a contact submission.
const (
	ContactSuccessMessage = "Message sent successfully!"
	ContactFailureMessage = "Error sending message. Please try again."
)

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Alert calls fn(message).
func (fn NotifierFunc) Alert(message string) {
	fn(message)
}

// ContactFormHandler posts the contact form to /api/contact.
type ContactFormHandler struct {
	client   Doer
	url      string
	form     *Form
	notifier Notifier
}

// NewContactFormHandler wires a form to the contact endpoint.
func NewContactFormHandler(client Doer, baseURL string, form *Form, notifier Notifier) *ContactFormHandler {
	if client == nil {
		client = http.DefaultClient
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &ContactFormHandler{
		client:   client,
		url:      strings.TrimRight(baseURL, "/") + ContactPath,
		form:     form,
		notifier: notifier,
	}
}

// Submit sends the form's current state as one multipart POST. On success the
// user is notified and the form is reset; on any failure the user gets the
// generic failure notice and the form keeps its values. Overlapping calls are
// not coalesced.
func (h *ContactFormHandler) Submit(ctx context.Context) error {
	if err := h.send(ctx, h.form.Entries()); err != nil {
		h.notifier.Alert(ContactFailureMessage)
		return fmt.Errorf("submit contact form: %w", err)
	}

	h.notifier.Alert(ContactSuccessMessage)
	h.form.Reset()
	return nil
}

func (h *ContactFormHandler) send(ctx context.Context, entries []Entry) error {
	body, contentType, err := encodeMultipart(entries)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func encodeMultipart(entries []Entry) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, entry := range entries {
		if entry.File == nil {
			if err := writer.WriteField(entry.Name, entry.Value); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", entry.Name, err)
			}
			continue
		}
		part, err := writer.CreateFormFile(entry.Name, entry.File.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", entry.Name, err)
		}
		if _, err := part.Write(entry.File.Content); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", entry.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

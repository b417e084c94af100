package page

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"golang.org/x/net/html"
)

const testPage = `<!DOCTYPE html>
<html><head><title>Gallery</title></head><body>
<section><div id="artworks"></div></section>
<section><div id="blog-posts"></div></section>
<section><div id="events-calendar"></div></section>
<form id="contact-form">
<input type="text" name="name">
<input type="email" name="email">
<textarea name="message"></textarea>
<input type="file" name="attachment">
<button type="submit">Send</button>
</form>
</body></html>`

// recordingClient serves requests in-process and records them.
type recordingClient struct {
	mu       sync.Mutex
	handler  http.Handler
	requests []*http.Request
}

func (c *recordingClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w.Result(), nil
}

func (c *recordingClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Alert(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func parseTestPage(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("parse test page: %v", err)
	}
	return doc
}

func mustElement(t *testing.T, doc *Document, id string) *Element {
	t.Helper()
	el, err := doc.ElementByID(id)
	if err != nil {
		t.Fatalf("lookup #%s: %v", id, err)
	}
	return el
}

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		t.Fatalf("render node: %v", err)
	}
	return sb.String()
}

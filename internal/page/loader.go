package page

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// Endpoints consumed by the page.
const (
	ArtworksPath  = "/api/artworks"
	BlogPostsPath = "/api/blog-posts"
	EventsPath    = "/api/events"
	ContactPath   = "/api/contact"
)

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader fetches one list and renders it into one container.
type Loader interface {
	Name() string
	Load(ctx context.Context) error
}

// ListLoader fetches a JSON array of T and appends one fragment per element,
// in array order. Each Load call appends a fresh set; nothing is cleared.
type ListLoader[T any] struct {
	name      string
	client    Doer
	url       string
	container Container
	render    func(T) (*html.Node, error)
}

// NewListLoader builds a loader for the list served at baseURL+path.
func NewListLoader[T any](name string, client Doer, baseURL, path string, container Container, render func(T) (*html.Node, error)) *ListLoader[T] {
	if client == nil {
		client = http.DefaultClient
	}
	return &ListLoader[T]{
		name:      name,
		client:    client,
		url:       strings.TrimRight(baseURL, "/") + path,
		container: container,
		render:    render,
	}
}

// NewArtworkLoader fills container from /api/artworks.
func NewArtworkLoader(client Doer, baseURL string, container Container) *ListLoader[Artwork] {
	return NewListLoader("artworks", client, baseURL, ArtworksPath, container, RenderArtwork)
}

// NewBlogPostLoader fills container from /api/blog-posts.
func NewBlogPostLoader(client Doer, baseURL string, container Container) *ListLoader[BlogPost] {
	return NewListLoader("blog-posts", client, baseURL, BlogPostsPath, container, RenderBlogPost)
}

// NewEventLoader fills container from /api/events.
func NewEventLoader(client Doer, baseURL string, container Container) *ListLoader[Event] {
	return NewListLoader("events", client, baseURL, EventsPath, container, RenderEvent)
}

// Name identifies the loader in error reports.
func (l *ListLoader[T]) Name() string {
	return l.name
}

// Load issues one GET and renders the response. The status code is not
// inspected; a body that is not a JSON array fails the decode. Fragments
// appended before a render failure stay in the container.
func (l *ListLoader[T]) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", l.name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", l.name, err)
	}
	defer resp.Body.Close()

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return fmt.Errorf("decode %s: %w", l.name, err)
	}

	for _, item := range items {
		fragment, err := l.render(item)
		if err != nil {
			return err
		}
		l.container.Append(fragment)
	}
	return nil
}

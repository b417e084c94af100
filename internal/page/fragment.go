package page

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Artwork is one element of the /api/artworks response.
type Artwork struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BlogPost is one element of the /api/blog-posts response.
type BlogPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Event is one element of the /api/events response.
type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

var fragmentTemplates = template.Must(template.New("fragments").Parse(`
{{define "artwork"}}<div class="artwork"><img src="{{.Image}}" alt="{{.Title}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
{{define "blog-post"}}<div class="blog-post"><h3>{{.Title}}</h3><p>{{.Content}}</p></div>{{end}}
{{define "event"}}<div class="event"><h3>{{.Title}}</h3><p>{{.Date}}</p><p>{{.Description}}</p></div>{{end}}
`))

// RenderArtwork builds the gallery fragment for an artwork.
func RenderArtwork(a Artwork) (*html.Node, error) {
	return renderFragment("artwork", a)
}

// RenderBlogPost builds the blog section fragment for a post.
func RenderBlogPost(p BlogPost) (*html.Node, error) {
	return renderFragment("blog-post", p)
}

// RenderEvent builds the calendar fragment for an event.
func RenderEvent(e Event) (*html.Node, error) {
	return renderFragment("event", e)
}

func renderFragment(name string, data any) (*html.Node, error) {
	var buf bytes.Buffer
	if err := fragmentTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s fragment: %w", name, err)
	}

	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(&buf, parent)
	if err != nil {
		return nil, fmt.Errorf("parse %s fragment: %w", name, err)
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%s fragment: expected one root node, got %d", name, len(nodes))
	}
	return nodes[0], nil
}

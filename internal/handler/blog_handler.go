package handler

import (
	"errors"
	"net/http"

	"github.com/artgallery/internal/db"
	"github.com/artgallery/internal/service"
	"github.com/gin-gonic/gin"
)

type blogPostPayload struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  uint   `json:"user_id"`
}

type blogPostResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  uint   `json:"user_id"`
}

func newBlogPostResponse(item db.BlogPost) blogPostResponse {
	return blogPostResponse{
		ID:      item.ID,
		Title:   item.Title,
		Content: item.Content,
		UserID:  item.UserID,
	}
}

// ListBlogPosts returns every blog post as a JSON array.
func (a *API) ListBlogPosts(c *gin.Context) {
	items, err := a.blogs.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load blog posts")
		return
	}

	out := make([]blogPostResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newBlogPostResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// CreateBlogPost publishes a new post.
func (a *API) CreateBlogPost(c *gin.Context) {
	var payload blogPostPayload
	if !bindJSON(c, &payload, "title and content are required") {
		return
	}

	userID := resolveUserID(c, payload.UserID)
	if !a.requireKnownUser(c, userID) {
		return
	}

	item, err := a.blogs.Create(service.BlogPostInput{
		Title:   payload.Title,
		Content: payload.Content,
		UserID:  userID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create blog post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog post created successfully", "id": item.ID})
}

// ShowBlogPost renders a single post with its markdown content.
func (a *API) ShowBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{"title": "Not found", "error": "Post not found"})
		return
	}

	post, err := a.blogs.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{"title": "Not found", "error": "Post not found"})
			return
		}
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{"title": "Error", "error": "Failed to load post"})
		return
	}

	a.renderHTML(c, http.StatusOK, "blog_post.html", gin.H{
		"title": post.Title,
		"post":  post,
	})
}

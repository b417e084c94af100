package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/artgallery/internal/locale"
	"github.com/artgallery/internal/page"
	"github.com/artgallery/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	users     *service.UserService
	artworks  *service.ArtworkService
	feedback  *service.FeedbackService
	blogs     *service.BlogService
	events    *service.EventService
	contacts  *service.ContactService
	templates *template.Template
	siteName  string
	self      page.Doer
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, templates *template.Template, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		users:     service.NewUserService(gdb),
		artworks:  service.NewArtworkService(gdb),
		feedback:  service.NewFeedbackService(gdb),
		blogs:     service.NewBlogService(gdb),
		events:    service.NewEventService(gdb),
		contacts:  service.NewContactService(gdb, uploadDir, uploadURL),
		templates: templates,
		siteName:  "Art Gallery",
	}
}

// SetSiteName overrides the name shown in page titles.
func (a *API) SetSiteName(name string) {
	if name != "" {
		a.siteName = name
	}
}

// UseSelf points the home page prerender at the given handler, normally the
// router the API is mounted on.
func (a *API) UseSelf(h http.Handler) {
	a.self = page.HandlerClient(h)
}

func (a *API) pageData(c *gin.Context, data gin.H) gin.H {
	payload := gin.H{"htmlLang": locale.FromAcceptLanguage(c.GetHeader("Accept-Language")).HTMLLang}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.siteName
	}
	return payload
}

func (a *API) renderHTML(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, a.pageData(c, data))
}

func (a *API) executeTemplate(c *gin.Context, name string, data gin.H) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, name, a.pageData(c, data)); err != nil {
		return nil, err
	}
	return &buf, nil
}

package handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/artgallery/internal/page"
	"github.com/gin-gonic/gin"
)

// ShowHome renders the page shell and, when a self client is configured,
// fills the artwork, blog and event containers before responding.
func (a *API) ShowHome(c *gin.Context) {
	data := gin.H{"title": "Home"}
	if a.self == nil {
		a.renderHTML(c, http.StatusOK, "home.html", data)
		return
	}

	shell, err := a.executeTemplate(c, "home.html", data)
	if err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{"title": "Error", "error": "Failed to render page"})
		return
	}

	doc, err := page.ParseDocument(bytes.NewReader(shell.Bytes()))
	if err != nil {
		c.Error(err)
		c.Data(http.StatusOK, "text/html; charset=utf-8", shell.Bytes())
		return
	}

	p, err := page.New(doc, page.Options{
		Client: a.self,
		OnLoadError: func(loader string, err error) {
			log.Printf("[WARN] home prerender: %s: %v", loader, err)
		},
	})
	if err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{"title": "Error", "error": "Failed to render page"})
		return
	}
	p.Ready(c.Request.Context()).Wait()

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(c.Writer); err != nil {
		c.Error(err)
	}
}

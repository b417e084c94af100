package router

import (
	"strings"

	"github.com/artgallery/internal/handler"
	"github.com/artgallery/internal/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxMultipartMemory 限制联系表单在内存中缓存的大小，超出部分写入临时文件
const maxMultipartMemory = 32 << 20

// Config 汇总构建路由所需的参数
type Config struct {
	SessionSecret string
	UploadDir     string
	UploadURLPath string
	// SiteName 为空时使用默认站点名
	SiteName string
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, cfg Config) (*gin.Engine, error) {
	r := gin.Default()
	r.MaxMultipartMemory = maxMultipartMemory

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 7 * 24 * 3600})
	r.Use(sessions.Sessions("gallery_session", store))

	templates, err := view.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(templates)

	// 上传文件服务，/uploads 为兼容别名
	uploadURLPath := "/" + strings.Trim(cfg.UploadURLPath, "/")
	r.Static(uploadURLPath, cfg.UploadDir)
	if uploadURLPath != "/uploads" {
		r.Static("/uploads", cfg.UploadDir)
	}

	api := handler.NewAPI(gdb, templates, cfg.UploadDir, uploadURLPath)
	api.SetSiteName(cfg.SiteName)
	api.UseSelf(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowHome)
	r.GET("/blog/:id", api.ShowBlogPost)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/register", api.Register)
		apiGroup.POST("/login", api.Login)
		apiGroup.POST("/logout", api.Logout)

		apiGroup.GET("/artworks", api.ListArtworks)
		apiGroup.POST("/artworks", api.CreateArtwork)
		apiGroup.GET("/artworks/:id/feedback", api.ListFeedback)
		apiGroup.POST("/feedback", api.CreateFeedback)

		apiGroup.GET("/blog-posts", api.ListBlogPosts)
		apiGroup.POST("/blog-posts", api.CreateBlogPost)

		apiGroup.GET("/events", api.ListEvents)
		apiGroup.POST("/events", api.CreateEvent)

		apiGroup.POST("/contact", api.SubmitContact)
		apiGroup.GET("/contact", api.ListContactMessages)
	}

	return r, nil
}

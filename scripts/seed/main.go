package main

import (
	"fmt"
	"log"

	"github.com/artgallery/internal/config"
	"github.com/artgallery/internal/db"
	"github.com/artgallery/internal/service"
)

// 示例数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("数据已存在，跳过生成")
		return
	}

	fmt.Println("开始生成示例数据...")

	user, err := service.NewUserService(db.DB).Register(service.RegisterInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin123",
	})
	if err != nil {
		log.Fatal("创建用户失败:", err)
	}

	artworks := service.NewArtworkService(db.DB)
	for _, input := range []service.ArtworkInput{
		{Title: "Sunset over the Harbor", Description: "Oil on canvas, 60x80cm", Image: "/static/images/sunset.jpg", Category: "painting"},
		{Title: "Morning Study", Description: "Charcoal on paper", Image: "/static/images/study.jpg", Category: "drawing"},
		{Title: "Atrium", Description: "Silver gelatin print", Image: "/static/images/atrium.jpg", Category: "photography"},
	} {
		input.UserID = user.ID
		if _, err := artworks.Create(input); err != nil {
			log.Fatal("创建作品失败:", err)
		}
	}

	if _, err := service.NewBlogService(db.DB).Create(service.BlogPostInput{
		Title:   "Welcome to the gallery",
		Content: "Our **autumn exhibition** opens next month.",
		UserID:  user.ID,
	}); err != nil {
		log.Fatal("创建文章失败:", err)
	}

	events := service.NewEventService(db.DB)
	for _, input := range []service.EventInput{
		{Title: "Autumn Vernissage", Description: "Opening night with the artists", Date: "2026-11-02"},
		{Title: "Artist Talk", Description: "A conversation about process", Date: "2026-11-09"},
	} {
		if _, err := events.Create(input); err != nil {
			log.Fatal("创建活动失败:", err)
		}
	}

	fmt.Println("示例数据生成完成！")
	fmt.Println("用户: admin (密码: admin123)")
}

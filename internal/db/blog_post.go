package db

import "gorm.io/gorm"

// BlogPost 定义博客文章模型，Content 为 Markdown 文本
type BlogPost struct {
	gorm.Model
	Title   string `gorm:"size:120;not null"`
	Content string `gorm:"type:text;not null"`
	UserID  uint   `gorm:"not null;index"`
	User    User
}

package db

import "gorm.io/gorm"

// Artwork 定义画廊作品模型
type Artwork struct {
	gorm.Model
	Title       string `gorm:"size:120;not null"`
	Description string `gorm:"type:text;not null"`
	Image       string `gorm:"size:120;not null"`
	Category    string `gorm:"size:50;not null"`
	UserID      uint   `gorm:"not null;index"`
	User        User
}

// Feedback 是访客对某件作品留下的反馈
type Feedback struct {
	gorm.Model
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	ArtworkID uint   `gorm:"not null;index"`
	User      User
	Artwork   Artwork
}

// TableName 返回自定义表名
func (Feedback) TableName() string {
	return "feedbacks"
}

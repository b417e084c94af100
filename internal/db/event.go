package db

import "gorm.io/gorm"

// Event 定义活动日历中的条目
// Date 保持为自由格式字符串，前台原样展示
type Event struct {
	gorm.Model
	Title       string `gorm:"size:120;not null"`
	Description string `gorm:"type:text;not null"`
	Date        string `gorm:"size:50;not null"`
}

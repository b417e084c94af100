package db

import "gorm.io/gorm"

// ContactMessage 保存联系表单的一次提交
// Name/Email/Message 为常用字段，其余表单字段写入 ContactField
type ContactMessage struct {
	gorm.Model
	Name        string `gorm:"size:120"`
	Email       string `gorm:"size:255"`
	Message     string `gorm:"type:text"`
	RemoteAddr  string `gorm:"size:64"`
	Fields      []ContactField
	Attachments []ContactAttachment
}

// ContactField 记录联系表单中未被单独建模的字段
type ContactField struct {
	gorm.Model
	ContactMessageID uint   `gorm:"index;not null"`
	Name             string `gorm:"size:100;not null"`
	Value            string `gorm:"type:text"`
}

// ContactAttachment 描述随联系表单上传的文件
type ContactAttachment struct {
	gorm.Model
	ContactMessageID uint   `gorm:"index;not null"`
	FieldName        string `gorm:"size:100;not null"`
	OriginalName     string `gorm:"size:255"`
	StoredName       string `gorm:"size:255;not null"`
	URL              string `gorm:"size:255"`
	Size             int64
	ContentType      string `gorm:"size:100"`
}

package service

import (
	"fmt"
	"html"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/artgallery/internal/db"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// MaxAttachmentSize 限制单个附件的大小
const MaxAttachmentSize = 10 << 20

// ContactService 负责保存联系表单提交及其附件
type ContactService struct {
	db        *gorm.DB
	uploadDir string
	uploadURL string
	policy    *bluemonday.Policy
}

// ContactField 是表单中的一个文本字段，按 Fields 中的顺序入库
type ContactField struct {
	Name  string
	Value string
}

// ContactInput 汇总一次联系表单提交
type ContactInput struct {
	Fields     []ContactField
	Files      map[string][]*multipart.FileHeader
	RemoteAddr string
}

// NewContactService 构造 ContactService，附件写入 uploadDir 并通过 uploadURL 对外暴露
func NewContactService(gdb *gorm.DB, uploadDir, uploadURL string) *ContactService {
	return &ContactService{
		db:        gdb,
		uploadDir: uploadDir,
		uploadURL: strings.TrimRight(uploadURL, "/"),
		policy:    bluemonday.StrictPolicy(),
	}
}

// Submit 保存一次联系表单提交。字段内容不做必填校验，但整张表单不能为空。
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	if len(input.Fields) == 0 && countFiles(input.Files) == 0 {
		return nil, ErrContactEmpty
	}

	message := db.ContactMessage{RemoteAddr: strings.TrimSpace(input.RemoteAddr)}
	for _, field := range input.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		// StrictPolicy 输出的是转义后的文本，入库前还原
		value := html.UnescapeString(s.policy.Sanitize(field.Value))
		switch strings.ToLower(name) {
		case "name":
			message.Name = value
		case "email":
			message.Email = value
		case "message":
			message.Message = value
		default:
			message.Fields = append(message.Fields, db.ContactField{Name: name, Value: value})
		}
	}

	var written []string
	fieldNames := make([]string, 0, len(input.Files))
	for fieldName := range input.Files {
		fieldNames = append(fieldNames, fieldName)
	}
	sort.Strings(fieldNames)
	for _, fieldName := range fieldNames {
		for _, header := range input.Files[fieldName] {
			attachment, storedPath, err := s.saveAttachment(fieldName, header)
			if err != nil {
				removeAll(written)
				return nil, err
			}
			written = append(written, storedPath)
			message.Attachments = append(message.Attachments, attachment)
		}
	}

	if err := s.db.Create(&message).Error; err != nil {
		removeAll(written)
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &message, nil
}

// List 返回最近的联系表单提交，最新的在前
func (s *ContactService) List(limit int) ([]db.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []db.ContactMessage
	if err := s.db.Preload("Fields").Preload("Attachments").
		Order("id desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}

func (s *ContactService) saveAttachment(fieldName string, header *multipart.FileHeader) (db.ContactAttachment, string, error) {
	if header.Size > MaxAttachmentSize {
		return db.ContactAttachment{}, "", fmt.Errorf("%w: %s", ErrAttachmentTooLarge, header.Filename)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return db.ContactAttachment{}, "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return db.ContactAttachment{}, "", fmt.Errorf("open attachment: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	storedName := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	storedPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		return db.ContactAttachment{}, "", fmt.Errorf("create attachment file: %w", err)
	}
	size, copyErr := io.Copy(dst, io.LimitReader(src, MaxAttachmentSize+1))
	closeErr := dst.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(storedPath)
		return db.ContactAttachment{}, "", fmt.Errorf("write attachment: %w", copyErr)
	}
	if size > MaxAttachmentSize {
		os.Remove(storedPath)
		return db.ContactAttachment{}, "", fmt.Errorf("%w: %s", ErrAttachmentTooLarge, header.Filename)
	}

	return db.ContactAttachment{
		FieldName:    fieldName,
		OriginalName: filepath.Base(header.Filename),
		StoredName:   storedName,
		URL:          path.Join(s.uploadURL, storedName),
		Size:         size,
		ContentType:  header.Header.Get("Content-Type"),
	}, storedPath, nil
}

func countFiles(files map[string][]*multipart.FileHeader) int {
	total := 0
	for _, headers := range files {
		total += len(headers)
	}
	return total
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}

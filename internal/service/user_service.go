package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artgallery/internal/db"
	"gorm.io/gorm"
)

// UserService 负责注册与登录校验
type UserService struct {
	db *gorm.DB
}

// RegisterInput 描述注册请求中的字段
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// NewUserService 构造 UserService
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Register 创建新用户；用户名或邮箱已存在时返回 ErrUserExists
func (s *UserService) Register(input RegisterInput) (*db.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if err := requireFields("username", username, "email", email, "password", input.Password); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&db.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	user := db.User{Username: username, Email: email}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate 校验用户名与密码
func (s *UserService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Exists 判断指定用户是否存在
func (s *UserService) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&db.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return count > 0, nil
}

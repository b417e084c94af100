package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrArtworkNotFound    = errors.New("artwork not found")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrContactEmpty       = errors.New("contact submission is empty")
	ErrAttachmentTooLarge = errors.New("attachment too large")
)

package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthorNotFound       = errors.New("author not found")
	ErrMailNotFound         = errors.New("mail record not found")
	ErrMailCategoryNotFound = errors.New("mail category not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrSlugTaken            = errors.New("slug already in use")
	ErrTaskNotFound         = errors.New("task not found")
	ErrSectionNotFound      = errors.New("page section not found")
)

package service

import "errors"

// Relationship manager outcomes.
var (
	ErrTargetNotFound  = errors.New("relation target not found")
	ErrSelfRelation    = errors.New("relation with oneself")
	ErrRelationExists  = errors.New("relation already exists")
	ErrRelationMissing = errors.New("relation does not exist")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("old password does not match")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrLinkExpired        = errors.New("link has expired")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrForbidden          = errors.New("not allowed")

	ErrArticleNotFound  = errors.New("article not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryExists   = errors.New("report category already exists")
	ErrCategoryNotFound = errors.New("report category not found")
	ErrReportNotFound   = errors.New("report not found")
)

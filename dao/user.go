package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername returns nil when no such user exists.
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// FindByLogin matches either the username or the email.
func (u *Users) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ? OR email = ?", login, login)
}

func (u *Users) FindByHash(ctx context.Context, hash string) (*models.User, error) {
	if hash == "" {
		return nil, nil
	}
	return u.Repo.FindByWhere(ctx, "hash = ?", hash)
}

func (u *Users) FindByResetHash(ctx context.Context, hash string) (*models.User, error) {
	if hash == "" {
		return nil, nil
	}
	return u.Repo.FindByWhere(ctx, "reset_password_hash = ?", hash)
}

func (u *Users) List(ctx context.Context, p types.Pagination) ([]*models.User, int64, error) {
	var total int64
	if err := u.Repo.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*models.User, 0)
	if total == 0 {
		return items, 0, nil
	}
	err := u.Repo.Model(ctx).
		Order("created_at " + p.SafeOrder()).
		Order("id " + p.SafeOrder()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}

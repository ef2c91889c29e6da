package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                     uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username               string     `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_users_username" json:"username"`
	Email                  string     `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uk_users_email" json:"email"`
	Password               string     `gorm:"column:password;type:varchar(128);not null" json:"-"` // bcrypt
	Bio                    string     `gorm:"column:bio;type:varchar(500)" json:"bio"`
	Image                  string     `gorm:"column:image;type:varchar(255)" json:"image"`
	Role                   string     `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	IsVerified             bool       `gorm:"column:is_verified;not null" json:"isVerified"`
	Hash                   string     `gorm:"column:hash;type:varchar(64);index:idx_users_hash" json:"-"` // email verification token
	HashExpiresAt          *time.Time `gorm:"column:hash_expires_at" json:"-"`
	ResetPasswordHash      string     `gorm:"column:reset_password_hash;type:varchar(64);index:idx_users_reset_hash" json:"-"`
	ResetPasswordExpiresAt *time.Time `gorm:"column:reset_password_expires_at" json:"-"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ActorSummary is the only user data exposed in relation lists.
type ActorSummary struct {
	Username string `gorm:"column:username" json:"username"`
}

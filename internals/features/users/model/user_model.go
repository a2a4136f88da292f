package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the administrator allow-list. Being present here is what
// grants admin access; there is no password.
type UserModel struct {
	ID            string     `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name          *string    `gorm:"column:name" json:"name,omitempty"`
	Email         string     `gorm:"column:email;not null;uniqueIndex" json:"email"`
	EmailVerified *time.Time `gorm:"column:emailVerified" json:"emailVerified,omitempty"`
	Image         *string    `gorm:"column:image" json:"image,omitempty"`
}

func (UserModel) TableName() string { return "User" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

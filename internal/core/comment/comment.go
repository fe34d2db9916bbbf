package comment

import (
	"time"

	"inkwell/internal/core/post"
	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

type Comment struct {
	ID      uint64    `gorm:"primaryKey;autoIncrement"`
	PostID  uint64    `gorm:"not null;index"`
	Post    post.Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"` // comments go with their post
	UserID  uuid.UUID `gorm:"type:char(36);not null;index"`
	User    user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Text    string    `gorm:"type:text;not null"`
	PubDate time.Time `gorm:"not null;index"`
}

package post

import (
	"time"

	"inkwell/internal/core/group"
	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

// Post ordered by (PubDate desc, ID desc) everywhere; PubDate is written once on create
type Post struct {
	ID        uint64       `gorm:"primaryKey;autoIncrement"`
	Text      string       `gorm:"type:text;not null"`
	PubDate   time.Time    `gorm:"not null;index"`
	UserID    uuid.UUID    `gorm:"type:char(36);not null;index"`
	User      user.User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	GroupID   *uint        `gorm:"index"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image     string       `gorm:"type:varchar(255)"` // opaque attachment reference
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

package follower

import (
	"time"

	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Follower a directed edge: FollowerID receives the posts of UserID.
// The unique index is what makes a concurrent double follow impossible.
type Follower struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;index;uniqueIndex:uniq_follower_user,priority:2"`
	User       user.User `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_user,priority:1"`
	Follower   user.User `gorm:"foreignkey:FollowerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

// Outcome of a follow request; neither value is an error
type Outcome int

const (
	NoOp Outcome = iota
	Created
)

func (o Outcome) String() string {
	if o == Created {
		return "created"
	}
	return "noop"
}

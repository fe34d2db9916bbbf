package group

import "time"

// Group a themed community posts can be published into; Slug never changes once set
type Group struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// "groups" is reserved in MySQL 8
func (Group) TableName() string { return "post_groups" }

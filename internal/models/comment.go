package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogComment is a reader comment on a blog post. Comments are created
// unapproved and only listed publicly once an admin approves them.
type BlogComment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostSlug    string         `gorm:"size:255;not null;index" json:"postSlug"`
	AuthorName  string         `gorm:"size:120;not null" json:"authorName"`
	AuthorEmail string         `gorm:"size:255" json:"-"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Approved    bool           `gorm:"default:false;index" json:"approved"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *BlogComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User owns all planning data: the budget/checklist/guest documents live
// as serialized columns, the timeline as a one-to-one child table.
type User struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName             string         `gorm:"size:120" json:"fullName"`
	Email                string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password             string         `gorm:"size:100" json:"-"`
	Provider             string         `gorm:"size:50;default:'email'" json:"-"`
	WeddingDate          *time.Time     `json:"weddingDate"`
	HasGeneratedTimeline bool           `gorm:"default:false" json:"hasGeneratedTimeline"`
	BudgetData           datatypes.JSON `json:"-"`
	ChecklistData        datatypes.JSON `json:"-"`
	GuestData            datatypes.JSON `json:"-"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

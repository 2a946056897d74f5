package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Timeline is the per-user container for the wedding-prep schedule.
// The unique index on UserID enforces the one-to-one with User.
type Timeline struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	WeddingDate time.Time      `json:"weddingDate"`
	IsGenerated bool           `gorm:"default:false" json:"isGenerated"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Items       []TimelineItem `gorm:"foreignKey:TimelineID" json:"items"`
}

func (t *Timeline) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TimelineItem is one planning task. ItemID is the caller-supplied
// stable key ("book-venue"); at most one row per (timeline, key).
type TimelineItem struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TimelineID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_timeline_items_key" json:"timelineId"`
	ItemID       string           `gorm:"size:100;not null;uniqueIndex:idx_timeline_items_key" json:"itemId"`
	Title        string           `gorm:"size:255" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	DueDate      *time.Time       `json:"dueDate"`
	Category     string           `gorm:"size:100" json:"category"`
	Completed    bool             `gorm:"default:false" json:"completed"`
	IsWeddingDay bool             `gorm:"default:false" json:"isWeddingDay"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Options      []TimelineOption `gorm:"foreignKey:TimelineItemID" json:"options"`
}

func (i *TimelineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TimelineOption is either a selectable vendor choice (IsTextInput false,
// at most one selected per item) or a free-text answer slot (IsTextInput
// true, TextValue holds the answer, IsSelected means "non-empty").
type TimelineOption struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TimelineItemID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_timeline_options_key" json:"timelineItemId"`
	OptionID       *string        `gorm:"size:100;uniqueIndex:idx_timeline_options_key" json:"optionId"`
	Label          string         `gorm:"size:255" json:"label"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          string         `gorm:"size:50" json:"price"`
	Image          string         `gorm:"type:text" json:"image"`
	Location       string         `gorm:"size:255" json:"location"`
	Specialties    datatypes.JSON `json:"specialties"`
	Rating         float64        `json:"rating"`
	IsTextInput    bool           `gorm:"default:false" json:"isTextInput"`
	IsSelected     bool           `gorm:"default:false" json:"isSelected"`
	TextValue      *string        `gorm:"type:text" json:"textValue"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (o *TimelineOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SaveItemRequest struct {
	ItemID          string            `json:"itemId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DueDate         string            `json:"dueDate"`
	Category        string            `json:"category"`
	SelectedOption  string            `json:"selectedOption,omitempty"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
	IsWeddingDay    bool              `json:"isWeddingDay,omitempty"`
}

type SaveSelectionRequest struct {
	ItemID            string   `json:"itemId"`
	ItemTitle         string   `json:"itemTitle"`
	ItemCategory      string   `json:"itemCategory"`
	ItemDescription   string   `json:"itemDescription"`
	OptionID          string   `json:"optionId"`
	OptionLabel       string   `json:"optionLabel"`
	OptionDescription string   `json:"optionDescription,omitempty"`
	OptionPrice       string   `json:"optionPrice,omitempty"`
	OptionImage       string   `json:"optionImage,omitempty"`
	OptionRating      *float64 `json:"optionRating,omitempty"`
}

// OptionTextInputs stays raw so the handler can reject non-object
// payloads instead of silently coercing them.
type SaveTextInputsRequest struct {
	ItemID           string          `json:"itemId"`
	ItemTitle        string          `json:"itemTitle"`
	ItemDescription  string          `json:"itemDescription"`
	ItemCategory     string          `json:"itemCategory"`
	OptionTextInputs json.RawMessage `json:"optionTextInputs"`
}

type BulkOption struct {
	OptionID    string   `json:"optionId"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Location    string   `json:"location,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	IsTextInput bool     `json:"isTextInput,omitempty"`
}

type BulkItem struct {
	ItemID          string            `json:"itemId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DueDate         string            `json:"dueDate"`
	Category        string            `json:"category"`
	Completed       bool              `json:"completed,omitempty"`
	IsWeddingDay    bool              `json:"isWeddingDay,omitempty"`
	Options         []BulkOption      `json:"options,omitempty"`
	SelectedOption  string            `json:"selectedOption,omitempty"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

type BulkTimelineRequest struct {
	Timeline    []BulkItem `json:"timeline"`
	WeddingDate string     `json:"weddingDate"`
}

// Read-side views. Selection state is derived from option rows at read
// time, never stored on the item.

type TimelineOptionView struct {
	OptionID    *string  `json:"optionId"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Location    string   `json:"location,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	IsTextInput bool     `json:"isTextInput"`
	IsSelected  bool     `json:"isSelected"`
	TextValue   *string  `json:"textValue,omitempty"`
}

type TimelineItemView struct {
	ItemID          string               `json:"itemId"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	DueDate         *time.Time           `json:"dueDate"`
	Category        string               `json:"category"`
	Completed       bool                 `json:"completed"`
	IsWeddingDay    bool                 `json:"isWeddingDay"`
	Options         []TimelineOptionView `json:"options"`
	SelectedOption  *string              `json:"selectedOption,omitempty"`
	SelectedOptions map[string]string    `json:"selectedOptions,omitempty"`
}

type TimelineView struct {
	ID          uuid.UUID          `json:"id"`
	WeddingDate time.Time          `json:"weddingDate"`
	IsGenerated bool               `json:"isGenerated"`
	Items       []TimelineItemView `json:"items"`
}

type BulkSaveResult struct {
	TimelineID  uuid.UUID `json:"timelineId"`
	WeddingDate time.Time `json:"weddingDate"`
	Items       int       `json:"items"`
}

type ClearResult struct {
	Removed int64 `json:"removed"`
}

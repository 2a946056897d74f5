package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrTimelineNotFound = errors.New("timeline not found")
	ErrItemNotFound     = errors.New("timeline item not found")
)

// TimelineService reconciles client-submitted wedding-prep schedules
// with the persisted Timeline/TimelineItem/TimelineOption rows.
type TimelineService struct {
	db *gorm.DB
}

func NewTimelineService(db *gorm.DB) *TimelineService {
	return &TimelineService{db: db}
}

// EnsureTimeline finds or lazily creates the user's timeline. The unique
// index on user_id keeps concurrent callers from creating two rows.
func (s *TimelineService) EnsureTimeline(userID uuid.UUID) (*models.Timeline, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	timeline, _, err := findOrCreate(s.db, map[string]interface{}{"user_id": userID}, func(t *models.Timeline) {
		t.UserID = userID
		if user.WeddingDate != nil {
			t.WeddingDate = *user.WeddingDate
		} else {
			t.WeddingDate = time.Now().UTC()
		}
	})
	return timeline, err
}

// SaveItem upserts a single planning task. Last writer wins on every
// field; option rows are untouched here.
func (s *TimelineService) SaveItem(userID uuid.UUID, req *dto.SaveItemRequest) (*models.TimelineItem, error) {
	if req.ItemID == "" || req.Title == "" || req.Description == "" || req.DueDate == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: itemId, title, description, dueDate and category are required", ErrValidation)
	}
	due, err := ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	timeline, err := s.EnsureTimeline(userID)
	if err != nil {
		return nil, err
	}

	completed := req.SelectedOption != "" || len(req.SelectedOptions) > 0

	item, _, err := upsertRow(s.db,
		map[string]interface{}{"timeline_id": timeline.ID, "item_id": req.ItemID},
		func(i *models.TimelineItem) {
			i.TimelineID = timeline.ID
			i.ItemID = req.ItemID
			i.Title = req.Title
			i.Description = req.Description
			i.DueDate = &due
			i.Category = req.Category
			i.Completed = completed
			i.IsWeddingDay = req.IsWeddingDay
		},
		map[string]interface{}{
			"title":          req.Title,
			"description":    req.Description,
			"due_date":       due,
			"category":       req.Category,
			"completed":      completed,
			"is_wedding_day": req.IsWeddingDay,
		})
	return item, err
}

// SaveSelection records the user's choice of one vendor option. The item
// and option rows are created on demand; an option that already exists
// gets a metadata refresh only, then the selection is applied
// exclusively: sibling non-text options are cleared in the same call.
func (s *TimelineService) SaveSelection(userID uuid.UUID, req *dto.SaveSelectionRequest) (*models.TimelineOption, error) {
	if req.ItemID == "" || req.ItemTitle == "" || req.ItemCategory == "" || req.ItemDescription == "" ||
		req.OptionID == "" || req.OptionLabel == "" {
		return nil, fmt.Errorf("%w: itemId, itemTitle, itemCategory, itemDescription, optionId and optionLabel are required", ErrValidation)
	}

	timeline, err := s.EnsureTimeline(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.ensureItem(timeline.ID, req.ItemID, req.ItemTitle, req.ItemDescription, req.ItemCategory)
	if err != nil {
		return nil, err
	}

	rating := 0.0
	if req.OptionRating != nil {
		rating = *req.OptionRating
	}

	option, _, err := upsertRow(s.db,
		map[string]interface{}{"timeline_item_id": item.ID, "option_id": req.OptionID},
		func(o *models.TimelineOption) {
			key := req.OptionID
			o.TimelineItemID = item.ID
			o.OptionID = &key
			o.Label = req.OptionLabel
			o.Description = req.OptionDescription
			o.Price = req.OptionPrice
			o.Image = req.OptionImage
			o.Rating = rating
			o.IsSelected = true
		},
		map[string]interface{}{
			"label":       req.OptionLabel,
			"description": req.OptionDescription,
			"price":       req.OptionPrice,
			"image":       req.OptionImage,
			"rating":      rating,
		})
	if err != nil {
		return nil, err
	}

	if err := s.selectExclusively(item.ID, option.ID); err != nil {
		return nil, err
	}
	option.IsSelected = true

	return option, nil
}

// SaveTextInputs persists free-text answers, one option row per key.
func (s *TimelineService) SaveTextInputs(userID uuid.UUID, req *dto.SaveTextInputsRequest) (map[string]string, error) {
	if req.ItemID == "" || req.ItemTitle == "" || req.ItemDescription == "" || req.ItemCategory == "" {
		return nil, fmt.Errorf("%w: itemId, itemTitle, itemDescription and itemCategory are required", ErrValidation)
	}

	inputs := map[string]string{}
	if len(req.OptionTextInputs) == 0 {
		return nil, fmt.Errorf("%w: optionTextInputs is required", ErrValidation)
	}
	if err := json.Unmarshal(req.OptionTextInputs, &inputs); err != nil {
		return nil, fmt.Errorf("%w: optionTextInputs must be an object of strings", ErrValidation)
	}

	timeline, err := s.EnsureTimeline(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.ensureItem(timeline.ID, req.ItemID, req.ItemTitle, req.ItemDescription, req.ItemCategory)
	if err != nil {
		return nil, err
	}

	for _, key := range sortedKeys(inputs) {
		value := inputs[key]
		if err := s.writeTextOption(item.ID, key, value); err != nil {
			return nil, err
		}
	}

	return inputs, nil
}

// GetTimeline reconstructs the client view: items with their options,
// plus the derived selectedOption / selectedOptions fields.
func (s *TimelineService) GetTimeline(userID uuid.UUID) (*dto.TimelineView, error) {
	timeline, err := s.EnsureTimeline(userID)
	if err != nil {
		return nil, err
	}

	var full models.Timeline
	err = s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date asc, item_id asc")
		}).
		Preload("Items.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&full, "id = ?", timeline.ID).Error
	if err != nil {
		return nil, err
	}

	view := &dto.TimelineView{
		ID:          full.ID,
		WeddingDate: full.WeddingDate,
		IsGenerated: full.IsGenerated,
		Items:       make([]dto.TimelineItemView, 0, len(full.Items)),
	}

	for _, item := range full.Items {
		view.Items = append(view.Items, buildItemView(item))
	}

	return view, nil
}

// SaveComplete is the canonical full-import path: it overwrites the
// timeline envelope, upserts every item and option, and is the
// selection-exclusivity-safe way to import a whole schedule.
func (s *TimelineService) SaveComplete(userID uuid.UUID, req *dto.BulkTimelineRequest) (*dto.BulkSaveResult, error) {
	if req.Timeline == nil {
		return nil, fmt.Errorf("%w: timeline must be an array", ErrValidation)
	}
	if req.WeddingDate == "" {
		return nil, fmt.Errorf("%w: weddingDate is required", ErrValidation)
	}
	weddingDate, err := ParseDate(req.WeddingDate)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	timeline, _, err := findOrCreate(s.db, map[string]interface{}{"user_id": userID}, func(t *models.Timeline) {
		t.UserID = userID
		t.WeddingDate = weddingDate
	})
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(timeline).Updates(map[string]interface{}{
		"wedding_date": weddingDate,
		"is_generated": true,
	}).Error; err != nil {
		return nil, err
	}

	for idx, desc := range req.Timeline {
		if desc.ItemID == "" {
			return nil, fmt.Errorf("%w: timeline[%d] is missing itemId", ErrValidation, idx)
		}
		if err := s.importItem(timeline.ID, desc); err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&user).Update("has_generated_timeline", true).Error; err != nil {
		return nil, err
	}

	return &dto.BulkSaveResult{
		TimelineID:  timeline.ID,
		WeddingDate: weddingDate,
		Items:       len(req.Timeline),
	}, nil
}

// Clear removes every item (and options) under the user's timeline.
// Calling it with no timeline, or twice in a row, is a no-op success.
func (s *TimelineService) Clear(userID uuid.UUID) (int64, error) {
	var timeline models.Timeline
	if err := s.db.First(&timeline, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	removed, err := s.deleteItems(s.db.Where("timeline_id = ?", timeline.ID))
	if err != nil {
		return 0, err
	}

	if err := s.db.Model(&timeline).Update("is_generated", false).Error; err != nil {
		return 0, err
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("has_generated_timeline", false).Error; err != nil {
		return 0, err
	}

	return removed, nil
}

// DeleteItem removes one task (and its options) by its stable key.
func (s *TimelineService) DeleteItem(userID uuid.UUID, itemKey string) error {
	var timeline models.Timeline
	if err := s.db.First(&timeline, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimelineNotFound
		}
		return err
	}

	removed, err := s.deleteItems(s.db.Where("timeline_id = ? AND item_id = ?", timeline.ID, itemKey))
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *TimelineService) ensureItem(timelineID uuid.UUID, itemKey, title, description, category string) (*models.TimelineItem, error) {
	item, _, err := findOrCreate(s.db,
		map[string]interface{}{"timeline_id": timelineID, "item_id": itemKey},
		func(i *models.TimelineItem) {
			i.TimelineID = timelineID
			i.ItemID = itemKey
			i.Title = title
			i.Description = description
			i.Category = category
		})
	return item, err
}

func (s *TimelineService) importItem(timelineID uuid.UUID, desc dto.BulkItem) error {
	var due *time.Time
	if desc.DueDate != "" {
		parsed, err := ParseDate(desc.DueDate)
		if err != nil {
			return err
		}
		due = &parsed
	}

	item, _, err := upsertRow(s.db,
		map[string]interface{}{"timeline_id": timelineID, "item_id": desc.ItemID},
		func(i *models.TimelineItem) {
			i.TimelineID = timelineID
			i.ItemID = desc.ItemID
			i.Title = desc.Title
			i.Description = desc.Description
			i.DueDate = due
			i.Category = desc.Category
			i.Completed = desc.Completed
			i.IsWeddingDay = desc.IsWeddingDay
		},
		map[string]interface{}{
			"title":          desc.Title,
			"description":    desc.Description,
			"due_date":       due,
			"category":       desc.Category,
			"completed":      desc.Completed,
			"is_wedding_day": desc.IsWeddingDay,
		})
	if err != nil {
		return err
	}

	for _, opt := range desc.Options {
		if err := s.importOption(item.ID, opt); err != nil {
			return err
		}
	}

	if desc.SelectedOption != "" {
		// Two-step exclusive fix-up: clear all non-text siblings, then
		// mark exactly the named option.
		if err := s.db.Model(&models.TimelineOption{}).
			Where("timeline_item_id = ? AND is_text_input = ?", item.ID, false).
			Update("is_selected", false).Error; err != nil {
			return err
		}
		if err := s.db.Model(&models.TimelineOption{}).
			Where("timeline_item_id = ? AND option_id = ?", item.ID, desc.SelectedOption).
			Update("is_selected", true).Error; err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(desc.SelectedOptions) {
		if err := s.writeTextOption(item.ID, key, desc.SelectedOptions[key]); err != nil {
			return err
		}
	}

	return nil
}

// importOption upserts one vendor option. On create, selection state
// starts cleared no matter what the descriptor says; on update only the
// descriptive metadata is refreshed, so a re-import of vendor data never
// downgrades a prior user choice.
func (s *TimelineService) importOption(itemID uuid.UUID, opt dto.BulkOption) error {
	lookup := map[string]interface{}{"timeline_item_id": itemID}
	if opt.OptionID == "" {
		lookup["option_id"] = nil
	} else {
		lookup["option_id"] = opt.OptionID
	}

	var specialties datatypes.JSON
	if len(opt.Specialties) > 0 {
		if b, err := json.Marshal(opt.Specialties); err == nil {
			specialties = datatypes.JSON(b)
		}
	}

	_, _, err := upsertRow(s.db, lookup,
		func(o *models.TimelineOption) {
			o.TimelineItemID = itemID
			if opt.OptionID != "" {
				key := opt.OptionID
				o.OptionID = &key
			}
			o.Label = opt.Label
			o.Description = opt.Description
			o.Price = opt.Price
			o.Image = opt.Image
			o.Location = opt.Location
			o.Specialties = specialties
			o.Rating = opt.Rating
			o.IsTextInput = opt.IsTextInput
			o.IsSelected = false
			o.TextValue = nil
		},
		map[string]interface{}{
			"label":         opt.Label,
			"description":   opt.Description,
			"price":         opt.Price,
			"image":         opt.Image,
			"location":      opt.Location,
			"specialties":   specialties,
			"rating":        opt.Rating,
			"is_text_input": opt.IsTextInput,
		})
	return err
}

// writeTextOption upserts the per-key free-text row. The selection flag
// on a text option means "answer is non-empty".
func (s *TimelineService) writeTextOption(itemID uuid.UUID, key, value string) error {
	hasText := strings.TrimSpace(value) != ""
	_, _, err := upsertRow(s.db,
		map[string]interface{}{"timeline_item_id": itemID, "option_id": key},
		func(o *models.TimelineOption) {
			k, v := key, value
			o.TimelineItemID = itemID
			o.OptionID = &k
			o.IsTextInput = true
			o.TextValue = &v
			o.IsSelected = hasText
		},
		map[string]interface{}{
			"is_text_input": true,
			"text_value":    value,
			"is_selected":   hasText,
		})
	return err
}

// selectExclusively enforces the single-selection invariant in storage:
// clear every other non-text option for the item, then set the target.
func (s *TimelineService) selectExclusively(itemID, optionRowID uuid.UUID) error {
	if err := s.db.Model(&models.TimelineOption{}).
		Where("timeline_item_id = ? AND is_text_input = ? AND id <> ?", itemID, false, optionRowID).
		Update("is_selected", false).Error; err != nil {
		return err
	}
	return s.db.Model(&models.TimelineOption{}).
		Where("id = ?", optionRowID).
		Update("is_selected", true).Error
}

func (s *TimelineService) deleteItems(scope *gorm.DB) (int64, error) {
	var itemIDs []uuid.UUID
	if err := scope.Model(&models.TimelineItem{}).Pluck("id", &itemIDs).Error; err != nil {
		return 0, err
	}
	if len(itemIDs) == 0 {
		return 0, nil
	}

	// Children first, then parents; the store's FK cascade is not relied on.
	if err := s.db.Where("timeline_item_id IN ?", itemIDs).
		Delete(&models.TimelineOption{}).Error; err != nil {
		return 0, err
	}
	result := s.db.Where("id IN ?", itemIDs).Delete(&models.TimelineItem{})
	return result.RowsAffected, result.Error
}

func buildItemView(item models.TimelineItem) dto.TimelineItemView {
	view := dto.TimelineItemView{
		ItemID:       item.ItemID,
		Title:        item.Title,
		Description:  item.Description,
		DueDate:      item.DueDate,
		Category:     item.Category,
		Completed:    item.Completed,
		IsWeddingDay: item.IsWeddingDay,
		Options:      make([]dto.TimelineOptionView, 0, len(item.Options)),
	}

	selectedTexts := map[string]string{}
	for _, opt := range item.Options {
		var specialties []string
		if len(opt.Specialties) > 0 {
			_ = json.Unmarshal(opt.Specialties, &specialties)
		}
		view.Options = append(view.Options, dto.TimelineOptionView{
			OptionID:    opt.OptionID,
			Label:       opt.Label,
			Description: opt.Description,
			Price:       opt.Price,
			Image:       opt.Image,
			Location:    opt.Location,
			Specialties: specialties,
			Rating:      opt.Rating,
			IsTextInput: opt.IsTextInput,
			IsSelected:  opt.IsSelected,
			TextValue:   opt.TextValue,
		})

		if opt.IsTextInput {
			if opt.OptionID != nil && opt.TextValue != nil && *opt.TextValue != "" {
				selectedTexts[*opt.OptionID] = *opt.TextValue
			}
			continue
		}
		// Tolerates zero or multiple selected rows: the first one wins.
		if opt.IsSelected && view.SelectedOption == nil && opt.OptionID != nil {
			view.SelectedOption = opt.OptionID
		}
	}

	if len(selectedTexts) > 0 {
		view.SelectedOptions = selectedTexts
	}
	return view
}

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrValidation, s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/google/uuid"
)

func findItemView(t *testing.T, view *dto.TimelineView, itemKey string) dto.TimelineItemView {
	t.Helper()
	for _, item := range view.Items {
		if item.ItemID == itemKey {
			return item
		}
	}
	t.Fatalf("item %q not found in timeline view", itemKey)
	return dto.TimelineItemView{}
}

func TestEnsureTimelineReusesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	first, err := svc.EnsureTimeline(user.ID)
	if err != nil {
		t.Fatalf("EnsureTimeline: %v", err)
	}
	second, err := svc.EnsureTimeline(user.ID)
	if err != nil {
		t.Fatalf("EnsureTimeline second call: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected a single timeline row, got %s and %s", first.ID, second.ID)
	}
	if !first.WeddingDate.Equal(*user.WeddingDate) {
		t.Errorf("expected wedding date %v from user profile, got %v", user.WeddingDate, first.WeddingDate)
	}
}

func TestEnsureTimelineUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)

	if _, err := svc.EnsureTimeline(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSaveItemUpsertsByKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.SaveItemRequest{
		ItemID:      "book-venue",
		Title:       "Book Venue",
		Description: "Tour venues and put down a deposit.",
		DueDate:     "2025-09-01",
		Category:    "Vendors",
	}
	if _, err := svc.SaveItem(user.ID, req); err != nil {
		t.Fatalf("SaveItem: %v", err)
	}

	req.Title = "Book the Venue"
	req.SelectedOption = "riverside-hall"
	item, err := svc.SaveItem(user.ID, req)
	if err != nil {
		t.Fatalf("SaveItem second call: %v", err)
	}

	var count int64
	if err := db.Model(&models.TimelineItem{}).Where("item_id = ?", "book-venue").Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row for itemId book-venue, got %d", count)
	}

	var stored models.TimelineItem
	if err := db.First(&stored, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if stored.Title != "Book the Venue" {
		t.Errorf("expected last write to win on title, got %q", stored.Title)
	}
	if !stored.Completed {
		t.Error("expected item with selectedOption to be marked completed")
	}
}

func TestSaveItemRequiresFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveItem(user.ID, &dto.SaveItemRequest{ItemID: "book-venue", Title: "Book Venue"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing fields, got %v", err)
	}

	_, err = svc.SaveItem(user.ID, &dto.SaveItemRequest{
		ItemID: "book-venue", Title: "Book Venue", Description: "d", DueDate: "next tuesday", Category: "Vendors",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for malformed date, got %v", err)
	}
}

func TestSaveSelectionIsExclusive(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	base := dto.SaveSelectionRequest{
		ItemID:          "book-venue",
		ItemTitle:       "Book Venue",
		ItemCategory:    "Vendors",
		ItemDescription: "Tour venues and put down a deposit.",
	}

	first := base
	first.OptionID = "venue-a"
	first.OptionLabel = "The Garden Estate"
	if _, err := svc.SaveSelection(user.ID, &first); err != nil {
		t.Fatalf("SaveSelection venue-a: %v", err)
	}

	second := base
	second.OptionID = "venue-b"
	second.OptionLabel = "Riverside Hall"
	if _, err := svc.SaveSelection(user.ID, &second); err != nil {
		t.Fatalf("SaveSelection venue-b: %v", err)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	item := findItemView(t, view, "book-venue")
	if item.SelectedOption == nil || *item.SelectedOption != "venue-b" {
		t.Errorf("expected selectedOption venue-b, got %v", item.SelectedOption)
	}

	var selected int64
	err = db.Model(&models.TimelineOption{}).
		Where("is_text_input = ? AND is_selected = ?", false, true).
		Count(&selected).Error
	if err != nil {
		t.Fatalf("count selected options: %v", err)
	}
	if selected != 1 {
		t.Errorf("expected exactly 1 selected option row, got %d", selected)
	}
}

func TestSaveSelectionSeedsMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.SaveSelectionRequest{
		ItemID:          "book-florist",
		ItemTitle:       "Book Florist",
		ItemCategory:    "Vendors",
		ItemDescription: "Share your palette with a florist.",
		OptionID:        "wildstem",
		OptionLabel:     "Wildstem Floral",
	}
	if _, err := svc.SaveSelection(user.ID, req); err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}

	var item models.TimelineItem
	if err := db.First(&item, "item_id = ?", "book-florist").Error; err != nil {
		t.Fatalf("expected item row to be created on demand: %v", err)
	}
	if item.Title != "Book Florist" || item.Category != "Vendors" {
		t.Errorf("seeded item has wrong fields: title=%q category=%q", item.Title, item.Category)
	}
	if item.DueDate != nil {
		t.Errorf("seeded item should have no due date, got %v", item.DueDate)
	}
}

func TestSaveTextInputsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.SaveTextInputsRequest{
		ItemID:           "draft-guest-list",
		ItemTitle:        "Draft the Guest List",
		ItemDescription:  "A rough headcount drives everything else.",
		ItemCategory:     "Planning",
		OptionTextInputs: json.RawMessage(`{"names":"Alice\nBob","estimated-count":"120"}`),
	}
	if _, err := svc.SaveTextInputs(user.ID, req); err != nil {
		t.Fatalf("SaveTextInputs: %v", err)
	}

	// Re-submitting a key updates the row in place.
	req.OptionTextInputs = json.RawMessage(`{"names":"Alice\nBob\nCarol"}`)
	if _, err := svc.SaveTextInputs(user.ID, req); err != nil {
		t.Fatalf("SaveTextInputs second call: %v", err)
	}

	var count int64
	if err := db.Model(&models.TimelineOption{}).Where("is_text_input = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("count text options: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 text option rows (one per key), got %d", count)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	item := findItemView(t, view, "draft-guest-list")
	if got := item.SelectedOptions["names"]; got != "Alice\nBob\nCarol" {
		t.Errorf("expected selectedOptions[names] to hold the latest text, got %q", got)
	}
	if got := item.SelectedOptions["estimated-count"]; got != "120" {
		t.Errorf("expected selectedOptions[estimated-count] = 120, got %q", got)
	}
}

func TestSaveTextInputsRejectsNonObject(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.SaveTextInputsRequest{
		ItemID:           "write-vows",
		ItemTitle:        "Write Your Vows",
		ItemDescription:  "Draft and rehearse your vows.",
		ItemCategory:     "Ceremony",
		OptionTextInputs: json.RawMessage(`"just a string"`),
	}
	if _, err := svc.SaveTextInputs(user.ID, req); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for non-object payload, got %v", err)
	}
}

func TestSaveCompleteAppliesSelectedOption(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.BulkTimelineRequest{
		WeddingDate: "2026-06-20",
		Timeline: []dto.BulkItem{
			{
				ItemID:      "book-venue",
				Title:       "Book Venue",
				Description: "Tour venues.",
				DueDate:     "2025-09-01",
				Category:    "Vendors",
				Options: []dto.BulkOption{
					{OptionID: "venue-a", Label: "A"},
					{OptionID: "venue-b", Label: "B"},
					{OptionID: "venue-c", Label: "C"},
				},
				SelectedOption: "venue-b",
			},
		},
	}

	result, err := svc.SaveComplete(user.ID, req)
	if err != nil {
		t.Fatalf("SaveComplete: %v", err)
	}
	if result.Items != 1 {
		t.Errorf("expected 1 imported item, got %d", result.Items)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	item := findItemView(t, view, "book-venue")
	if item.SelectedOption == nil || *item.SelectedOption != "venue-b" {
		t.Errorf("expected selectedOption venue-b, got %v", item.SelectedOption)
	}
	for _, opt := range item.Options {
		if opt.OptionID == nil {
			continue
		}
		want := *opt.OptionID == "venue-b"
		if opt.IsSelected != want {
			t.Errorf("option %s: isSelected = %v, want %v", *opt.OptionID, opt.IsSelected, want)
		}
	}
}

func TestSaveCompleteReimportKeepsSelection(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	item := dto.BulkItem{
		ItemID:      "book-caterer",
		Title:       "Book Caterer",
		Description: "Schedule tastings.",
		DueDate:     "2025-10-01",
		Category:    "Vendors",
		Options: []dto.BulkOption{
			{OptionID: "harvest-table", Label: "Harvest Table", Price: "$$$"},
			{OptionID: "smoke-and-salt", Label: "Smoke & Salt", Price: "$$"},
		},
		SelectedOption: "harvest-table",
	}
	req := &dto.BulkTimelineRequest{WeddingDate: "2026-06-20", Timeline: []dto.BulkItem{item}}
	if _, err := svc.SaveComplete(user.ID, req); err != nil {
		t.Fatalf("SaveComplete: %v", err)
	}

	// Vendor data refresh: new labels and prices, no selection in the
	// descriptor. The stored choice must survive.
	refresh := item
	refresh.SelectedOption = ""
	refresh.Options = []dto.BulkOption{
		{OptionID: "harvest-table", Label: "Harvest Table Catering", Price: "$$$$"},
		{OptionID: "smoke-and-salt", Label: "Smoke & Salt BBQ", Price: "$$"},
	}
	req.Timeline = []dto.BulkItem{refresh}
	if _, err := svc.SaveComplete(user.ID, req); err != nil {
		t.Fatalf("SaveComplete refresh: %v", err)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	got := findItemView(t, view, "book-caterer")
	if got.SelectedOption == nil || *got.SelectedOption != "harvest-table" {
		t.Errorf("expected selection to survive metadata refresh, got %v", got.SelectedOption)
	}
	for _, opt := range got.Options {
		if opt.OptionID != nil && *opt.OptionID == "harvest-table" && opt.Label != "Harvest Table Catering" {
			t.Errorf("expected refreshed label, got %q", opt.Label)
		}
	}

	var count int64
	if err := db.Model(&models.TimelineOption{}).Count(&count).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if count != 2 {
		t.Errorf("expected re-import to upsert rather than duplicate, got %d option rows", count)
	}
}

func TestSaveCompleteSetsGeneratedFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.BulkTimelineRequest{
		WeddingDate: "2026-06-20",
		Timeline: []dto.BulkItem{
			{ItemID: "set-budget", Title: "Set Your Budget", Description: "d", DueDate: "2025-06-20", Category: "Planning"},
		},
	}
	if _, err := svc.SaveComplete(user.ID, req); err != nil {
		t.Fatalf("SaveComplete: %v", err)
	}

	var timeline models.Timeline
	if err := db.First(&timeline, "user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload timeline: %v", err)
	}
	if !timeline.IsGenerated {
		t.Error("expected timeline.isGenerated = true after bulk save")
	}

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !reloaded.HasGeneratedTimeline {
		t.Error("expected user.hasGeneratedTimeline = true after bulk save")
	}
}

func TestSaveCompleteValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	if _, err := svc.SaveComplete(user.ID, &dto.BulkTimelineRequest{WeddingDate: "2026-06-20"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for nil timeline, got %v", err)
	}
	if _, err := svc.SaveComplete(user.ID, &dto.BulkTimelineRequest{Timeline: []dto.BulkItem{}}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing weddingDate, got %v", err)
	}

	req := &dto.BulkTimelineRequest{
		WeddingDate: "2026-06-20",
		Timeline:    []dto.BulkItem{{Title: "No key"}},
	}
	if _, err := svc.SaveComplete(user.ID, req); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for item without itemId, got %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.BulkTimelineRequest{
		WeddingDate: "2026-06-20",
		Timeline: []dto.BulkItem{
			{
				ItemID: "book-venue", Title: "Book Venue", Description: "d", DueDate: "2025-09-01", Category: "Vendors",
				Options:        []dto.BulkOption{{OptionID: "venue-a", Label: "A"}},
				SelectedOption: "venue-a",
			},
			{ItemID: "set-budget", Title: "Set Your Budget", Description: "d", DueDate: "2025-06-20", Category: "Planning"},
		},
	}
	if _, err := svc.SaveComplete(user.ID, req); err != nil {
		t.Fatalf("SaveComplete: %v", err)
	}

	removed, err := svc.Clear(user.ID)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed items, got %d", removed)
	}

	var options int64
	if err := db.Model(&models.TimelineOption{}).Count(&options).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if options != 0 {
		t.Errorf("expected options to be removed with their items, found %d", options)
	}

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.HasGeneratedTimeline {
		t.Error("expected user.hasGeneratedTimeline = false after clear")
	}

	removed, err = svc.Clear(user.ID)
	if err != nil {
		t.Fatalf("Clear second call: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected second clear to remove nothing, got %d", removed)
	}
}

func TestClearWithoutTimeline(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	removed, err := svc.Clear(user.ID)
	if err != nil {
		t.Fatalf("Clear without timeline: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed, got %d", removed)
	}
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	req := &dto.BulkTimelineRequest{
		WeddingDate: "2026-06-20",
		Timeline: []dto.BulkItem{
			{
				ItemID: "book-venue", Title: "Book Venue", Description: "d", DueDate: "2025-09-01", Category: "Vendors",
				Options: []dto.BulkOption{{OptionID: "venue-a", Label: "A"}},
			},
			{ItemID: "set-budget", Title: "Set Your Budget", Description: "d", DueDate: "2025-06-20", Category: "Planning"},
		},
	}
	if _, err := svc.SaveComplete(user.ID, req); err != nil {
		t.Fatalf("SaveComplete: %v", err)
	}

	if err := svc.DeleteItem(user.ID, "book-venue"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ItemID != "set-budget" {
		t.Errorf("expected only set-budget to remain, got %+v", view.Items)
	}

	var options int64
	if err := db.Model(&models.TimelineOption{}).Count(&options).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if options != 0 {
		t.Errorf("expected deleted item's options to go with it, found %d", options)
	}

	if err := svc.DeleteItem(user.ID, "book-venue"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestDeleteItemWithoutTimeline(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	if err := svc.DeleteItem(user.ID, "book-venue"); !errors.Is(err, ErrTimelineNotFound) {
		t.Errorf("expected ErrTimelineNotFound, got %v", err)
	}
}

func TestVenueBookingFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db)
	user := newTestUser(t, db, "couple@example.com")

	item, err := svc.SaveItem(user.ID, &dto.SaveItemRequest{
		ItemID:      "book-venue",
		Title:       "Book Venue",
		Description: "Tour venues and put down a deposit.",
		DueDate:     "2025-09-01",
		Category:    "Vendors",
	})
	if err != nil {
		t.Fatalf("SaveItem: %v", err)
	}
	if item.Completed {
		t.Error("expected item without selection to start incomplete")
	}

	_, err = svc.SaveSelection(user.ID, &dto.SaveSelectionRequest{
		ItemID:          "book-venue",
		ItemTitle:       "Book Venue",
		ItemCategory:    "Vendors",
		ItemDescription: "Tour venues and put down a deposit.",
		OptionID:        "venue-a",
		OptionLabel:     "The Garden Estate",
	})
	if err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}

	view, err := svc.GetTimeline(user.ID)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	got := findItemView(t, view, "book-venue")
	if got.SelectedOption == nil || *got.SelectedOption != "venue-a" {
		t.Errorf("expected selectedOption venue-a, got %v", got.SelectedOption)
	}
}

func TestParseDate(t *testing.T) {
	plain, err := ParseDate("2026-06-20")
	if err != nil {
		t.Fatalf("ParseDate plain date: %v", err)
	}
	if want := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC); !plain.Equal(want) {
		t.Errorf("expected %v, got %v", want, plain)
	}

	stamped, err := ParseDate("2026-06-20T15:04:05Z")
	if err != nil {
		t.Fatalf("ParseDate RFC3339: %v", err)
	}
	if stamped.Hour() != 15 {
		t.Errorf("expected hour 15, got %d", stamped.Hour())
	}

	if _, err := ParseDate("June 20th"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

package services

import (
	"errors"
	"testing"

	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/google/uuid"
)

func TestGetBudgetDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	doc, err := svc.GetBudget(user.ID)
	if err != nil {
		t.Fatalf("GetBudget: %v", err)
	}
	if doc.Version != models.DocumentVersion {
		t.Errorf("expected version %d, got %d", models.DocumentVersion, doc.Version)
	}
	if doc.Categories == nil || len(doc.Categories) != 0 {
		t.Errorf("expected empty categories slice, got %v", doc.Categories)
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	saved, err := svc.SaveBudget(user.ID, &models.BudgetDocument{
		TotalBudget: 30000,
		Categories: []models.BudgetCategory{
			{ID: "venue", Name: "Venue", Allocated: 12000, Spent: 5000},
			{ID: "catering", Name: "Catering", Allocated: 9000},
		},
	})
	if err != nil {
		t.Fatalf("SaveBudget: %v", err)
	}
	if saved.LastUpdated.IsZero() {
		t.Error("expected lastUpdated to be stamped on save")
	}

	doc, err := svc.GetBudget(user.ID)
	if err != nil {
		t.Fatalf("GetBudget: %v", err)
	}
	if doc.TotalBudget != 30000 {
		t.Errorf("expected totalBudget 30000, got %v", doc.TotalBudget)
	}
	if len(doc.Categories) != 2 || doc.Categories[0].ID != "venue" {
		t.Errorf("unexpected categories after round trip: %+v", doc.Categories)
	}
	if doc.Categories[0].Spent != 5000 {
		t.Errorf("expected spent 5000, got %v", doc.Categories[0].Spent)
	}
}

func TestSaveBudgetEchoesInvalidRecords(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveBudget(user.ID, &models.BudgetDocument{
		TotalBudget: -1,
		Categories: []models.BudgetCategory{
			{ID: "venue", Name: "Venue"},
			{ID: "", Name: "Missing ID"},
			{ID: "catering", Name: "Catering", Allocated: -50},
		},
	})

	var verr *RecordValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected RecordValidationError, got %v", err)
	}
	if len(verr.Records) != 3 {
		t.Fatalf("expected 3 invalid records, got %d: %+v", len(verr.Records), verr.Records)
	}
	if verr.Records[0].Index != -1 {
		t.Errorf("expected document-level failure at index -1, got %d", verr.Records[0].Index)
	}
	if verr.Records[1].Index != 1 {
		t.Errorf("expected failing category at index 1, got %d", verr.Records[1].Index)
	}

	// Nothing persisted on a failed save.
	doc, err := svc.GetBudget(user.ID)
	if err != nil {
		t.Fatalf("GetBudget: %v", err)
	}
	if doc.TotalBudget != 0 || len(doc.Categories) != 0 {
		t.Errorf("expected untouched defaults after failed save, got %+v", doc)
	}
}

func TestChecklistRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveChecklist(user.ID, &models.ChecklistDocument{
		Items: []models.ChecklistItem{
			{ID: "order-attire", Title: "Order Wedding Attire", Completed: true},
			{ID: "send-invitations", Title: "Send Invitations"},
		},
	})
	if err != nil {
		t.Fatalf("SaveChecklist: %v", err)
	}

	doc, err := svc.GetChecklist(user.ID)
	if err != nil {
		t.Fatalf("GetChecklist: %v", err)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(doc.Items))
	}
	if !doc.Items[0].Completed {
		t.Error("expected completed flag to survive the round trip")
	}
}

func TestSaveChecklistValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveChecklist(user.ID, &models.ChecklistDocument{
		Items: []models.ChecklistItem{{ID: "no-title"}},
	})
	var verr *RecordValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected RecordValidationError, got %v", err)
	}
	if len(verr.Records) != 1 || verr.Records[0].Index != 0 {
		t.Errorf("unexpected invalid records: %+v", verr.Records)
	}
}

func TestGuestsDefaultRSVP(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveGuests(user.ID, &models.GuestDocument{
		Guests: []models.Guest{
			{ID: "g1", Name: "Alice"},
			{ID: "g2", Name: "Bob", RSVPStatus: models.RSVPAccepted, PlusOnes: 1},
		},
	})
	if err != nil {
		t.Fatalf("SaveGuests: %v", err)
	}

	doc, err := svc.GetGuests(user.ID)
	if err != nil {
		t.Fatalf("GetGuests: %v", err)
	}
	if doc.Guests[0].RSVPStatus != models.RSVPPending {
		t.Errorf("expected missing rsvpStatus to default to pending, got %q", doc.Guests[0].RSVPStatus)
	}
	if doc.Guests[1].RSVPStatus != models.RSVPAccepted {
		t.Errorf("expected accepted status to survive, got %q", doc.Guests[1].RSVPStatus)
	}
}

func TestSaveGuestsRejectsUnknownRSVP(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)
	user := newTestUser(t, db, "couple@example.com")

	_, err := svc.SaveGuests(user.ID, &models.GuestDocument{
		Guests: []models.Guest{{ID: "g1", Name: "Alice", RSVPStatus: "maybe"}},
	})
	var verr *RecordValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected RecordValidationError, got %v", err)
	}
}

func TestPlannerUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlannerService(db)

	if _, err := svc.GetBudget(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetBudget: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.SaveGuests(uuid.New(), &models.GuestDocument{}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SaveGuests: expected ErrUserNotFound, got %v", err)
	}
}

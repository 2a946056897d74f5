package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordValidationError reports which records in a submitted document
// failed validation. Handlers echo the records back with a 400.
type RecordValidationError struct {
	Message string
	Records []dto.InvalidRecord
}

func (e *RecordValidationError) Error() string { return e.Message }

// PlannerService stores the budget/checklist/guest documents as
// serialized columns on the user row, behind a checked decode.
type PlannerService struct {
	db *gorm.DB
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

func (s *PlannerService) GetBudget(userID uuid.UUID) (*models.BudgetDocument, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	if len(user.BudgetData) == 0 {
		return models.DefaultBudgetDocument(), nil
	}

	var doc models.BudgetDocument
	if err := json.Unmarshal(user.BudgetData, &doc); err != nil {
		return nil, fmt.Errorf("decode budget document: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = models.DocumentVersion
	}
	if doc.Categories == nil {
		doc.Categories = []models.BudgetCategory{}
	}
	return &doc, nil
}

func (s *PlannerService) SaveBudget(userID uuid.UUID, doc *models.BudgetDocument) (*models.BudgetDocument, error) {
	if _, err := s.loadUser(userID); err != nil {
		return nil, err
	}

	var bad []dto.InvalidRecord
	if doc.TotalBudget < 0 {
		bad = append(bad, dto.InvalidRecord{Index: -1, Reason: "totalBudget must not be negative"})
	}
	for i, cat := range doc.Categories {
		switch {
		case cat.ID == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "category id is required", Record: cat})
		case cat.Name == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "category name is required", Record: cat})
		case cat.Allocated < 0 || cat.Spent < 0:
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "allocated and spent must not be negative", Record: cat})
		}
	}
	if len(bad) > 0 {
		return nil, &RecordValidationError{Message: "invalid budget document", Records: bad}
	}

	doc.Version = models.DocumentVersion
	doc.LastUpdated = time.Now().UTC()
	if doc.Categories == nil {
		doc.Categories = []models.BudgetCategory{}
	}
	if err := s.storeDocument(userID, "budget_data", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PlannerService) GetChecklist(userID uuid.UUID) (*models.ChecklistDocument, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	if len(user.ChecklistData) == 0 {
		return models.DefaultChecklistDocument(), nil
	}

	var doc models.ChecklistDocument
	if err := json.Unmarshal(user.ChecklistData, &doc); err != nil {
		return nil, fmt.Errorf("decode checklist document: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = models.DocumentVersion
	}
	if doc.Items == nil {
		doc.Items = []models.ChecklistItem{}
	}
	return &doc, nil
}

func (s *PlannerService) SaveChecklist(userID uuid.UUID, doc *models.ChecklistDocument) (*models.ChecklistDocument, error) {
	if _, err := s.loadUser(userID); err != nil {
		return nil, err
	}

	var bad []dto.InvalidRecord
	for i, item := range doc.Items {
		switch {
		case item.ID == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "item id is required", Record: item})
		case item.Title == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "item title is required", Record: item})
		}
	}
	if len(bad) > 0 {
		return nil, &RecordValidationError{Message: "invalid checklist document", Records: bad}
	}

	doc.Version = models.DocumentVersion
	if doc.Items == nil {
		doc.Items = []models.ChecklistItem{}
	}
	if err := s.storeDocument(userID, "checklist_data", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PlannerService) GetGuests(userID uuid.UUID) (*models.GuestDocument, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	if len(user.GuestData) == 0 {
		return models.DefaultGuestDocument(), nil
	}

	var doc models.GuestDocument
	if err := json.Unmarshal(user.GuestData, &doc); err != nil {
		return nil, fmt.Errorf("decode guest document: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = models.DocumentVersion
	}
	if doc.Guests == nil {
		doc.Guests = []models.Guest{}
	}
	return &doc, nil
}

func (s *PlannerService) SaveGuests(userID uuid.UUID, doc *models.GuestDocument) (*models.GuestDocument, error) {
	if _, err := s.loadUser(userID); err != nil {
		return nil, err
	}

	var bad []dto.InvalidRecord
	for i := range doc.Guests {
		guest := &doc.Guests[i]
		if guest.RSVPStatus == "" {
			guest.RSVPStatus = models.RSVPPending
		}
		switch {
		case guest.ID == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "guest id is required", Record: *guest})
		case guest.Name == "":
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "guest name is required", Record: *guest})
		case !validRSVP(guest.RSVPStatus):
			bad = append(bad, dto.InvalidRecord{Index: i, Reason: "rsvpStatus must be pending, accepted or declined", Record: *guest})
		}
	}
	if len(bad) > 0 {
		return nil, &RecordValidationError{Message: "invalid guest document", Records: bad}
	}

	doc.Version = models.DocumentVersion
	if doc.Guests == nil {
		doc.Guests = []models.Guest{}
	}
	if err := s.storeDocument(userID, "guest_data", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PlannerService) loadUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PlannerService) storeDocument(userID uuid.UUID, column string, doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", column, err)
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update(column, datatypes.JSON(b)).Error
}

func validRSVP(status models.RSVPStatus) bool {
	switch status {
	case models.RSVPPending, models.RSVPAccepted, models.RSVPDeclined:
		return true
	}
	return false
}

package models

import "time"

// Planner documents are stored as serialized columns on the user row.
// Each carries a schema version so the shape can evolve behind a checked
// decode. Defaults are constructed here and nowhere else.

const DocumentVersion = 1

type BudgetCategory struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Notes     string  `json:"notes,omitempty"`
}

type BudgetDocument struct {
	Version     int              `json:"version"`
	TotalBudget float64          `json:"totalBudget"`
	Categories  []BudgetCategory `json:"categories"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate,omitempty"`
	Category  string `json:"category,omitempty"`
	Completed bool   `json:"completed"`
}

type ChecklistDocument struct {
	Version int             `json:"version"`
	Items   []ChecklistItem `json:"items"`
}

type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

type Guest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	RSVPStatus  RSVPStatus `json:"rsvpStatus"`
	Side        string     `json:"side,omitempty"`
	TableNumber int        `json:"tableNumber,omitempty"`
	PlusOnes    int        `json:"plusOnes,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type GuestDocument struct {
	Version int     `json:"version"`
	Guests  []Guest `json:"guests"`
}

func DefaultBudgetDocument() *BudgetDocument {
	return &BudgetDocument{
		Version:    DocumentVersion,
		Categories: []BudgetCategory{},
	}
}

func DefaultChecklistDocument() *ChecklistDocument {
	return &ChecklistDocument{
		Version: DocumentVersion,
		Items:   []ChecklistItem{},
	}
}

func DefaultGuestDocument() *GuestDocument {
	return &GuestDocument{
		Version: DocumentVersion,
		Guests:  []Guest{},
	}
}

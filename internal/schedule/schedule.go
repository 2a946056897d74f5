package schedule

import (
	"sort"
	"time"
)

// Option is a canned vendor choice or free-text slot on a template task.
type Option struct {
	OptionID    string
	Label       string
	Description string
	Price       string
	Location    string
	Specialties []string
	Rating      float64
	IsTextInput bool
}

// Task is one entry of the default wedding-prep schedule. ItemID is the
// stable key the persistence layer upserts by.
type Task struct {
	ItemID       string
	Title        string
	Description  string
	Category     string
	DueDate      time.Time
	IsWeddingDay bool
	Options      []Option
}

// Generate builds the default schedule relative to the wedding date.
// Output is deterministic and sorted by due date, wedding-day tasks last
// for equal dates.
func Generate(weddingDate time.Time) []Task {
	day := weddingDate.UTC().Truncate(24 * time.Hour)

	tasks := make([]Task, 0, len(templates))
	for _, tpl := range templates {
		due := day.AddDate(0, tpl.monthsBefore, tpl.daysBefore)
		tasks = append(tasks, Task{
			ItemID:       tpl.itemID,
			Title:        tpl.title,
			Description:  tpl.description,
			Category:     tpl.category,
			DueDate:      due,
			IsWeddingDay: tpl.weddingDay,
			Options:      tpl.options,
		})
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		if tasks[i].IsWeddingDay != tasks[j].IsWeddingDay {
			return !tasks[i].IsWeddingDay
		}
		return tasks[i].ItemID < tasks[j].ItemID
	})

	return tasks
}

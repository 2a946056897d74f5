package schedule

import (
	"testing"
	"time"
)

var weddingDate = time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

func findTask(t *testing.T, tasks []Task, itemID string) Task {
	t.Helper()
	for _, task := range tasks {
		if task.ItemID == itemID {
			return task
		}
	}
	t.Fatalf("task %q not found", itemID)
	return Task{}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(weddingDate)
	second := Generate(weddingDate)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ItemID != second[i].ItemID {
			t.Errorf("position %d: %q vs %q", i, first[i].ItemID, second[i].ItemID)
		}
	}
}

func TestGenerateSortedByDueDate(t *testing.T) {
	tasks := Generate(weddingDate)

	for i := 1; i < len(tasks); i++ {
		if tasks[i].DueDate.Before(tasks[i-1].DueDate) {
			t.Errorf("tasks out of order: %s (%v) before %s (%v)",
				tasks[i].ItemID, tasks[i].DueDate, tasks[i-1].ItemID, tasks[i-1].DueDate)
		}
	}

	if tasks[0].ItemID != "set-budget" {
		t.Errorf("expected set-budget first, got %s", tasks[0].ItemID)
	}
}

func TestGenerateOffsets(t *testing.T) {
	tasks := Generate(weddingDate)

	venue := findTask(t, tasks, "book-venue")
	if want := weddingDate.AddDate(0, -10, 0); !venue.DueDate.Equal(want) {
		t.Errorf("book-venue due %v, want %v", venue.DueDate, want)
	}
	if len(venue.Options) != 3 {
		t.Errorf("expected 3 venue options, got %d", len(venue.Options))
	}

	headcount := findTask(t, tasks, "final-headcount")
	if want := weddingDate.AddDate(0, 0, -14); !headcount.DueDate.Equal(want) {
		t.Errorf("final-headcount due %v, want %v", headcount.DueDate, want)
	}
}

func TestGenerateWeddingDayTasks(t *testing.T) {
	tasks := Generate(weddingDate)

	for _, id := range []string{"ceremony", "reception"} {
		task := findTask(t, tasks, id)
		if !task.IsWeddingDay {
			t.Errorf("%s should be marked as a wedding-day task", id)
		}
		if !task.DueDate.Equal(weddingDate) {
			t.Errorf("%s due %v, want the wedding date", id, task.DueDate)
		}
	}

	vows := findTask(t, tasks, "write-vows")
	texts := 0
	for _, opt := range vows.Options {
		if opt.IsTextInput {
			texts++
		}
	}
	if texts != 2 {
		t.Errorf("expected 2 free-text slots on write-vows, got %d", texts)
	}
}

func TestGenerateNormalizesTime(t *testing.T) {
	late := time.Date(2026, 6, 20, 18, 30, 0, 0, time.UTC)
	tasks := Generate(late)

	ceremony := findTask(t, tasks, "ceremony")
	if !ceremony.DueDate.Equal(weddingDate) {
		t.Errorf("expected time-of-day to be truncated, got %v", ceremony.DueDate)
	}
}

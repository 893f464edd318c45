package ui

import (
	"testing"

	"github.com/billow-app/billow/internal/models"
)

func TestToggleSelect(t *testing.T) {
	s := NewViewState()

	s.ToggleSelect("a")
	if !s.IsSelected("a") {
		t.Error("expected 'a' to be selected after toggle")
	}

	s.ToggleSelect("a")
	if s.IsSelected("a") {
		t.Error("expected 'a' to be deselected after second toggle")
	}
}

func TestSelectAllAndClear(t *testing.T) {
	s := NewViewState()

	s.ToggleSelect("a")
	s.ToggleSelect("stale")
	s.SelectAll([]string{"a", "b", "c"})
	if s.SelectedCount() != 3 {
		t.Errorf("expected exactly 3 selected after SelectAll, got %d", s.SelectedCount())
	}
	if s.IsSelected("stale") {
		t.Error("expected SelectAll to replace the selection, 'stale' is still selected")
	}

	s.ClearSelection()
	if s.SelectedCount() != 0 {
		t.Errorf("expected 0 selected after clear, got %d", s.SelectedCount())
	}
}

func TestCycleFilter(t *testing.T) {
	s := NewViewState()

	want := []StatusFilter{FilterPaid, FilterPending, FilterOverdue, FilterAll}
	for _, expected := range want {
		s.CycleFilter()
		if s.Filter != expected {
			t.Errorf("expected filter %s, got %s", expected, s.Filter)
		}
	}
}

func TestCycleSortBy(t *testing.T) {
	s := NewViewState()

	want := []SortField{SortByAmount, SortByDueDate, SortByDate}
	for _, expected := range want {
		s.CycleSortBy()
		if s.SortBy != expected {
			t.Errorf("expected sort field %s, got %s", expected, s.SortBy)
		}
	}
}

func TestToggleSortDirection(t *testing.T) {
	s := NewViewState()

	if s.SortAscending {
		t.Error("expected descending by default")
	}
	s.ToggleSortDirection()
	if !s.SortAscending {
		t.Error("expected ascending after toggle")
	}
}

func TestMatches(t *testing.T) {
	s := NewViewState()

	if !s.Matches(models.StatusPaid) || !s.Matches(models.StatusOverdue) {
		t.Error("ALL filter should match every status")
	}

	s.SetFilter(FilterOverdue)
	if !s.Matches(models.StatusOverdue) {
		t.Error("OVERDUE filter should match OVERDUE")
	}
	if s.Matches(models.StatusPaid) {
		t.Error("OVERDUE filter should not match PAID")
	}
}

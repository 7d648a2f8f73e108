package exam

import (
	"testing"

	"school-system/internal/models"
)

func questionIDs(questions []models.Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func TestFlattenQuestions_Sectioned(t *testing.T) {
	e := &models.Exam{
		SectionsEnabled: true,
		Sections: []models.Section{
			{ID: 2, Order: 1, Questions: []models.Question{
				{ID: 30, Order: 1},
				{ID: 20, Order: 0},
			}},
			{ID: 1, Order: 0, Questions: []models.Question{
				{ID: 10, Order: 0},
			}},
		},
		// Populated direct questions must be ignored while sections are on.
		Questions: []models.Question{{ID: 99, Order: 0}},
	}

	got := questionIDs(FlattenQuestions(e))
	want := []uint{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFlattenQuestions_Flat(t *testing.T) {
	e := &models.Exam{
		Questions: []models.Question{
			{ID: 3, Order: 2},
			{ID: 1, Order: 0},
			{ID: 2, Order: 1},
		},
		// Sections present but the flag is off, so they never contribute.
		Sections: []models.Section{
			{ID: 1, Order: 0, Questions: []models.Question{{ID: 99, Order: 0}}},
		},
	}

	got := questionIDs(FlattenQuestions(e))
	want := []uint{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFlattenQuestions_Empty(t *testing.T) {
	if got := FlattenQuestions(&models.Exam{}); len(got) != 0 {
		t.Fatalf("expected no questions, got %v", got)
	}
	if got := FlattenQuestions(&models.Exam{SectionsEnabled: true}); len(got) != 0 {
		t.Fatalf("expected no questions, got %v", got)
	}
}

package exam

import (
	"sort"

	"school-system/internal/models"
)

// FlattenQuestions produces the authoritative question sequence for grading
// and point totals. When sections are enabled the exam's direct questions are
// ignored, and vice versa, so a question can never appear twice.
func FlattenQuestions(e *models.Exam) []models.Question {
	if e.SectionsEnabled {
		var out []models.Question
		for _, sec := range sortedSections(e.Sections) {
			out = append(out, sortedQuestions(sec.Questions)...)
		}
		return out
	}
	return sortedQuestions(e.Questions)
}

func sortedSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func sortedQuestions(questions []models.Question) []models.Question {
	out := make([]models.Question, len(questions))
	copy(out, questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func sortedAnswers(answers []models.Answer) []models.Answer {
	out := make([]models.Answer, len(answers))
	copy(out, answers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

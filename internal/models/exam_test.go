package models

import "testing"

func uintPtr(v uint) *uint { return &v }

func TestQuestionOwner(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     QuestionOwner
	}{
		{
			name:     "direct question",
			question: Question{ExamID: uintPtr(7)},
			want:     QuestionOwner{ExamID: 7},
		},
		{
			name:     "sectioned question",
			question: Question{SectionID: uintPtr(3)},
			want:     QuestionOwner{Sectioned: true, SectionID: 3},
		},
		{
			name:     "both columns populated resolves to the section",
			question: Question{ExamID: uintPtr(7), SectionID: uintPtr(3)},
			want:     QuestionOwner{Sectioned: true, SectionID: 3},
		},
		{
			name:     "orphan row",
			question: Question{},
			want:     QuestionOwner{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.question.Owner(); got != tt.want {
				t.Errorf("Owner() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

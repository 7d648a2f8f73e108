package exam

import "testing"

func TestValidateExamInput(t *testing.T) {
	tests := []struct {
		name       string
		in         ExamInput
		wantFields []string
	}{
		{
			name: "valid flat exam",
			in: ExamInput{
				Title: "Entrance Exam",
				Questions: []QuestionInput{
					{Type: "text", Answers: []AnswerInput{{Type: "text"}}},
				},
			},
		},
		{
			name:       "missing title",
			in:         ExamInput{Title: "   "},
			wantFields: []string{"title"},
		},
		{
			name: "section missing title",
			in: ExamInput{
				Title:           "Exam",
				SectionsEnabled: true,
				Sections:        []SectionInput{{Title: ""}},
			},
			wantFields: []string{"sections.0.title"},
		},
		{
			name: "question missing type and answers",
			in: ExamInput{
				Title:     "Exam",
				Questions: []QuestionInput{{Type: ""}},
			},
			wantFields: []string{"questions.0.type", "questions.0.answers"},
		},
		{
			name: "nested answer missing type",
			in: ExamInput{
				Title:           "Exam",
				SectionsEnabled: true,
				Sections: []SectionInput{
					{Title: "A", Questions: []QuestionInput{
						{Type: "text", Answers: []AnswerInput{{Type: "text"}, {Type: ""}}},
					}},
				},
			},
			wantFields: []string{"sections.0.questions.0.answers.1.type"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validateExamInput(&tc.in)
			if len(tc.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			for _, field := range tc.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("expected error for %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestValidateExamUpdate(t *testing.T) {
	empty := ""
	title := "New Title"

	if errs := validateExamUpdate(&ExamUpdateInput{Title: &empty}); errs == nil {
		t.Error("expected error for empty title")
	}
	if errs := validateExamUpdate(&ExamUpdateInput{Title: &title}); errs != nil {
		t.Errorf("unexpected errors %v", errs)
	}
	if errs := validateExamUpdate(&ExamUpdateInput{}); errs != nil {
		t.Errorf("unexpected errors for empty patch %v", errs)
	}
}

func TestStoredContent(t *testing.T) {
	if got := storedContent(nil); got != "" {
		t.Errorf("nil -> %q", got)
	}
	if got := storedContent("plain"); got != "plain" {
		t.Errorf("string -> %q", got)
	}
	if got := storedContent(map[string]interface{}{"a": 1.0}); got != `{"a":1}` {
		t.Errorf("map -> %q", got)
	}
}

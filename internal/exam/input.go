package exam

import (
	"fmt"
	"strings"
)

// Authoring inputs, decoded after key normalization. Content values stay
// untyped: whatever the author sent (string or structure) is stored raw and
// interpreted at read time.

type ExamInput struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	SectionsEnabled bool            `json:"sections_enabled"`
	Sections        []SectionInput  `json:"sections"`
	Questions       []QuestionInput `json:"questions"`
}

type SectionInput struct {
	Title     string          `json:"title"`
	Questions []QuestionInput `json:"questions"`
}

type QuestionInput struct {
	Type           string        `json:"type"`
	Content        interface{}   `json:"content"`
	ContentPreview interface{}   `json:"content_preview"`
	Points         *int          `json:"points"`
	Answers        []AnswerInput `json:"answers"`
}

type AnswerInput struct {
	Type           string      `json:"type"`
	Content        interface{} `json:"content"`
	ContentPreview interface{} `json:"content_preview"`
	IsCorrect      bool        `json:"is_correct"`
}

// ExamUpdateInput only covers the exam's own scalar fields; the question
// tree is not replaced through this path.
type ExamUpdateInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	SectionsEnabled *bool   `json:"sections_enabled"`
}

type SubmitInput struct {
	Details map[string]interface{} `json:"details"`
	Answers map[string]uint        `json:"answers"`
}

func validateExamInput(in *ExamInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "title is required"
	}
	for i, sec := range in.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			errs[fmt.Sprintf("sections.%d.title", i)] = "section title is required"
		}
		validateQuestions(errs, fmt.Sprintf("sections.%d.questions", i), sec.Questions)
	}
	validateQuestions(errs, "questions", in.Questions)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateQuestions(errs map[string]string, prefix string, questions []QuestionInput) {
	for i, q := range questions {
		if strings.TrimSpace(q.Type) == "" {
			errs[fmt.Sprintf("%s.%d.type", prefix, i)] = "question type is required"
		}
		if len(q.Answers) == 0 {
			errs[fmt.Sprintf("%s.%d.answers", prefix, i)] = "at least one answer is required"
		}
		for j, a := range q.Answers {
			if strings.TrimSpace(a.Type) == "" {
				errs[fmt.Sprintf("%s.%d.answers.%d.type", prefix, i, j)] = "answer type is required"
			}
		}
	}
}

func validateExamUpdate(in *ExamUpdateInput) map[string]string {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return map[string]string{"title": "title must not be empty"}
	}
	return nil
}

// storedContent keeps the authored value as-is: strings verbatim, structured
// values as their JSON text.
func storedContent(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return compactJSON(t)
	}
}

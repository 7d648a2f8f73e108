package exam

import (
	"testing"

	"school-system/internal/models"
)

func singleQuestionExam() *models.Exam {
	return &models.Exam{
		Questions: []models.Question{
			{ID: 1, Order: 0, Points: 5, Answers: []models.Answer{
				{ID: 11, QuestionID: 1, IsCorrect: true, Order: 0},
				{ID: 12, QuestionID: 1, IsCorrect: false, Order: 1},
			}},
		},
	}
}

func TestGradeQuestions_FullCorrect(t *testing.T) {
	questions := FlattenQuestions(singleQuestionExam())

	score, maxScore, breakdown := gradeQuestions(questions, map[uint]uint{1: 11})

	if score != 5 || maxScore != 5 {
		t.Fatalf("score=%d max=%d, want 5/5", score, maxScore)
	}
	if len(breakdown) != 1 {
		t.Fatalf("breakdown length %d, want 1", len(breakdown))
	}
	entry := breakdown[0]
	if !entry.IsCorrect || entry.PointsAwarded != 5 {
		t.Errorf("entry = %+v, want correct with 5 points", entry)
	}
	if entry.AnswerID == nil || *entry.AnswerID != 11 {
		t.Errorf("answer id = %v, want 11", entry.AnswerID)
	}
}

func TestGradeQuestions_Unanswered(t *testing.T) {
	questions := FlattenQuestions(singleQuestionExam())

	score, maxScore, breakdown := gradeQuestions(questions, map[uint]uint{})

	if score != 0 || maxScore != 5 {
		t.Fatalf("score=%d max=%d, want 0/5", score, maxScore)
	}
	entry := breakdown[0]
	if entry.AnswerID != nil {
		t.Errorf("answer id = %v, want nil", entry.AnswerID)
	}
	if entry.IsCorrect || entry.PointsAwarded != 0 {
		t.Errorf("entry = %+v, want incorrect with 0 points", entry)
	}
}

func TestGradeQuestions_WrongAnswer(t *testing.T) {
	questions := FlattenQuestions(singleQuestionExam())

	score, _, breakdown := gradeQuestions(questions, map[uint]uint{1: 12})

	if score != 0 {
		t.Fatalf("score=%d, want 0", score)
	}
	entry := breakdown[0]
	if entry.IsCorrect || entry.PointsAwarded != 0 {
		t.Errorf("entry = %+v, want incorrect with 0 points", entry)
	}
	if entry.AnswerID == nil || *entry.AnswerID != 12 {
		t.Errorf("answer id = %v, want 12 recorded", entry.AnswerID)
	}
}

// An answer id that belongs to a different question grades as incorrect, not
// as an error.
func TestGradeQuestions_ForeignAnswerID(t *testing.T) {
	e := &models.Exam{
		Questions: []models.Question{
			{ID: 1, Order: 0, Points: 5, Answers: []models.Answer{
				{ID: 11, QuestionID: 1, IsCorrect: true},
			}},
			{ID: 2, Order: 1, Points: 3, Answers: []models.Answer{
				{ID: 21, QuestionID: 2, IsCorrect: true},
			}},
		},
	}

	// Question 1 answered with question 2's correct answer.
	score, maxScore, breakdown := gradeQuestions(FlattenQuestions(e), map[uint]uint{1: 21})

	if score != 0 || maxScore != 8 {
		t.Fatalf("score=%d max=%d, want 0/8", score, maxScore)
	}
	entry := breakdown[0]
	if entry.IsCorrect || entry.PointsAwarded != 0 {
		t.Errorf("entry = %+v, want incorrect with 0 points", entry)
	}
}

func TestGradeQuestions_MixedSections(t *testing.T) {
	e := &models.Exam{
		SectionsEnabled: true,
		Sections: []models.Section{
			{ID: 1, Order: 0, Title: "A", Questions: []models.Question{
				{ID: 1, Order: 0, Points: 10, Answers: []models.Answer{
					{ID: 11, QuestionID: 1, IsCorrect: true},
				}},
			}},
			{ID: 2, Order: 1, Title: "B", Questions: []models.Question{
				{ID: 2, Order: 0, Points: 20, Answers: []models.Answer{
					{ID: 21, QuestionID: 2, IsCorrect: true},
				}},
			}},
		},
	}

	questions := FlattenQuestions(e)
	if len(questions) != 2 || questions[0].ID != 1 || questions[1].ID != 2 {
		t.Fatalf("flatten order wrong: %v", questionIDs(questions))
	}

	score, maxScore, breakdown := gradeQuestions(questions, map[uint]uint{1: 11, 2: 21})
	if maxScore != 30 {
		t.Errorf("max=%d, want 30", maxScore)
	}
	if score != 30 {
		t.Errorf("score=%d, want 30", score)
	}
	if breakdown[0].QuestionID != 1 || breakdown[1].QuestionID != 2 {
		t.Errorf("breakdown order %v", breakdown)
	}
}

// A question with no correct answer is valid but unscoreable.
func TestGradeQuestions_NoCorrectAnswer(t *testing.T) {
	e := &models.Exam{
		Questions: []models.Question{
			{ID: 1, Order: 0, Points: 5, Answers: []models.Answer{
				{ID: 11, QuestionID: 1, IsCorrect: false},
				{ID: 12, QuestionID: 1, IsCorrect: false},
			}},
		},
	}

	score, maxScore, _ := gradeQuestions(FlattenQuestions(e), map[uint]uint{1: 11})
	if score != 0 || maxScore != 5 {
		t.Fatalf("score=%d max=%d, want 0/5", score, maxScore)
	}
}

func TestGradeQuestions_ScoreEqualsAwardedSum(t *testing.T) {
	e := &models.Exam{
		Questions: []models.Question{
			{ID: 1, Order: 0, Points: 2, Answers: []models.Answer{{ID: 11, IsCorrect: true}}},
			{ID: 2, Order: 1, Points: 0, Answers: []models.Answer{{ID: 21, IsCorrect: true}}},
			{ID: 3, Order: 2, Points: 4, Answers: []models.Answer{{ID: 31, IsCorrect: true}}},
		},
	}

	score, maxScore, breakdown := gradeQuestions(FlattenQuestions(e), map[uint]uint{1: 11, 2: 21})

	sum := 0
	for _, b := range breakdown {
		sum += b.PointsAwarded
	}
	if sum != score {
		t.Errorf("awarded sum %d != score %d", sum, score)
	}
	if score != 2 || maxScore != 6 {
		t.Errorf("score=%d max=%d, want 2/6", score, maxScore)
	}
}

func TestParseAnswerMap(t *testing.T) {
	got := parseAnswerMap(map[string]uint{"1": 11, "junk": 5, "30": 42})
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 entries", got)
	}
	if got[1] != 11 || got[30] != 42 {
		t.Errorf("got %v", got)
	}
}

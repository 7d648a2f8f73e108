package exam

import "school-system/internal/models"

// gradeQuestions scores the candidate's chosen answers against the flattened
// question sequence. A chosen answer is only honored when it belongs to the
// question it was submitted for; anything else grades as incorrect with zero
// points rather than failing.
func gradeQuestions(questions []models.Question, chosen map[uint]uint) (score, maxScore int, breakdown []models.GradedQuestion) {
	for _, q := range questions {
		maxScore += q.Points
	}

	breakdown = make([]models.GradedQuestion, 0, len(questions))
	for _, q := range questions {
		entry := models.GradedQuestion{QuestionID: q.ID}
		if answerID, ok := chosen[q.ID]; ok {
			id := answerID
			entry.AnswerID = &id
			for _, a := range q.Answers {
				if a.ID != answerID {
					continue
				}
				if a.IsCorrect {
					entry.IsCorrect = true
					entry.PointsAwarded = q.Points
					score += q.Points
				}
				break
			}
		}
		breakdown = append(breakdown, entry)
	}
	return score, maxScore, breakdown
}

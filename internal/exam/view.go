package exam

import "school-system/internal/models"

// BuildView decorates the aggregate with resolved display content, every
// level in stored order. Staff readers also see each answer's correctness
// flag; candidates never do.
func (s *Service) BuildView(e *models.Exam, staff bool) models.ExamView {
	view := models.ExamView{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		SectionsEnabled: e.SectionsEnabled,
		Status:          e.Status,
	}

	if e.SectionsEnabled {
		for _, sec := range sortedSections(e.Sections) {
			view.Sections = append(view.Sections, models.SectionView{
				ID:        sec.ID,
				Title:     sec.Title,
				Order:     sec.Order,
				Questions: s.questionViews(sec.Questions, staff),
			})
		}
		return view
	}

	view.Questions = s.questionViews(e.Questions, staff)
	return view
}

func (s *Service) questionViews(questions []models.Question, staff bool) []models.QuestionView {
	out := make([]models.QuestionView, 0, len(questions))
	for _, q := range sortedQuestions(questions) {
		value, kind := ResolveContent(q.Type, q.Content, q.ContentPreview, s.storageBase)
		qv := models.QuestionView{
			ID:      q.ID,
			Type:    q.Type,
			Content: value,
			Kind:    kind,
			Points:  q.Points,
			Order:   q.Order,
		}
		for _, a := range sortedAnswers(q.Answers) {
			av, ak := ResolveContent(a.Type, a.Content, a.ContentPreview, s.storageBase)
			answer := models.AnswerView{
				ID:      a.ID,
				Type:    a.Type,
				Content: av,
				Kind:    ak,
				Order:   a.Order,
			}
			if staff {
				correct := a.IsCorrect
				answer.IsCorrect = &correct
			}
			qv.Answers = append(qv.Answers, answer)
		}
		out = append(out, qv)
	}
	return out
}

package exam

// Client payloads arrive in either camelCase or snake_case. Everything is
// rewritten to the snake_case names the store uses before validation.
var keyAliases = map[string]string{
	"sectionsEnabled": "sections_enabled",
	"contentPreview":  "content_preview",
	"isCorrect":       "is_correct",
	"examId":          "exam_id",
	"sectionId":       "section_id",
	"questionId":      "question_id",
	"answerId":        "answer_id",
	"maxScore":        "max_score",
	"fullName":        "full_name",
}

// NormalizeKeys renames aliased keys to their canonical form, recursing
// through nested maps and lists. Unknown keys, values, and list order pass
// through untouched.
func NormalizeKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			key := k
			if canonical, ok := keyAliases[k]; ok {
				key = canonical
			}
			out[key] = NormalizeKeys(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = NormalizeKeys(val)
		}
		return out
	default:
		return v
	}
}

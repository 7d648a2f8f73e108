package exam

import (
	"reflect"
	"testing"
)

func TestNormalizeKeys_RenamesAliases(t *testing.T) {
	in := map[string]interface{}{
		"title":           "Entrance Exam",
		"sectionsEnabled": true,
		"sections": []interface{}{
			map[string]interface{}{
				"title": "A",
				"questions": []interface{}{
					map[string]interface{}{
						"type":           "text",
						"contentPreview": "preview",
						"answers": []interface{}{
							map[string]interface{}{"type": "text", "isCorrect": true},
							map[string]interface{}{"type": "text", "isCorrect": false},
						},
					},
				},
			},
		},
	}

	want := map[string]interface{}{
		"title":            "Entrance Exam",
		"sections_enabled": true,
		"sections": []interface{}{
			map[string]interface{}{
				"title": "A",
				"questions": []interface{}{
					map[string]interface{}{
						"type":            "text",
						"content_preview": "preview",
						"answers": []interface{}{
							map[string]interface{}{"type": "text", "is_correct": true},
							map[string]interface{}{"type": "text", "is_correct": false},
						},
					},
				},
			},
		},
	}

	got := NormalizeKeys(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalized payload mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestNormalizeKeys_PreservesUnknownKeysAndOrder(t *testing.T) {
	in := map[string]interface{}{
		"custom_field": "kept",
		"nested": []interface{}{
			"first",
			"second",
			map[string]interface{}{"alsoUnknown": 1.0},
		},
	}

	got, ok := NormalizeKeys(in).(map[string]interface{})
	if !ok {
		t.Fatal("expected a map back")
	}
	if got["custom_field"] != "kept" {
		t.Errorf("unknown key dropped or renamed: %#v", got)
	}

	nested, ok := got["nested"].([]interface{})
	if !ok || len(nested) != 3 {
		t.Fatalf("list shape changed: %#v", got["nested"])
	}
	if nested[0] != "first" || nested[1] != "second" {
		t.Errorf("list order changed: %#v", nested)
	}
}

func TestNormalizeKeys_ScalarsPassThrough(t *testing.T) {
	for _, v := range []interface{}{nil, "str", 3.5, true} {
		if got := NormalizeKeys(v); got != v {
			t.Errorf("scalar %#v changed to %#v", v, got)
		}
	}
}

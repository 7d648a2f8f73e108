package exam

import "testing"

func TestResolveContent(t *testing.T) {
	const base = "https://assets.school.example/storage"

	tests := []struct {
		name      string
		typ       string
		content   interface{}
		preview   interface{}
		wantValue string
		wantKind  string
	}{
		{
			name:      "preview wins over content",
			typ:       "text",
			content:   "fallback",
			preview:   "preferred",
			wantValue: "preferred",
			wantKind:  KindText,
		},
		{
			name:      "content used when preview empty",
			typ:       "text",
			content:   "fallback",
			preview:   "",
			wantValue: "fallback",
			wantKind:  KindText,
		},
		{
			name:      "both absent resolves empty text",
			typ:       "image",
			content:   nil,
			preview:   nil,
			wantValue: "",
			wantKind:  KindText,
		},
		{
			name:      "structured value serialized compact",
			typ:       "text",
			content:   map[string]interface{}{"a": 1.0},
			wantValue: `{"a":1}`,
			wantKind:  KindText,
		},
		{
			name:      "outer double quotes stripped once",
			typ:       "text",
			content:   `"hello"`,
			wantValue: "hello",
			wantKind:  KindText,
		},
		{
			name:      "inner single quotes survive",
			typ:       "text",
			content:   `"'hello'"`,
			wantValue: "'hello'",
			wantKind:  KindText,
		},
		{
			name:      "whitespace trimmed",
			typ:       "text",
			content:   "  spaced out  ",
			wantValue: "spaced out",
			wantKind:  KindText,
		},
		{
			name:      "relative image path gets storage base",
			typ:       "image",
			preview:   "exams/q1.png",
			wantValue: base + "/exams/q1.png",
			wantKind:  KindImage,
		},
		{
			name:      "leading slash trimmed before prefixing",
			typ:       "figure",
			preview:   "/exams/q1.png",
			wantValue: base + "/exams/q1.png",
			wantKind:  KindImage,
		},
		{
			name:      "absolute url untouched",
			typ:       "image",
			preview:   "https://cdn.example/q1.png",
			wantValue: "https://cdn.example/q1.png",
			wantKind:  KindImage,
		},
		{
			name:      "data uri untouched",
			typ:       "IMAGE",
			preview:   "data:image/png;base64,AAAA",
			wantValue: "data:image/png;base64,AAAA",
			wantKind:  KindImage,
		},
		{
			name:      "unknown type defaults to text",
			typ:       "whatever",
			content:   "plain",
			wantValue: "plain",
			wantKind:  KindText,
		},
		{
			name:      "missing type defaults to text",
			typ:       "",
			content:   "plain",
			wantValue: "plain",
			wantKind:  KindText,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, kind := ResolveContent(tc.typ, tc.content, tc.preview, base)
			if value != tc.wantValue {
				t.Errorf("value = %q, want %q", value, tc.wantValue)
			}
			if kind != tc.wantKind {
				t.Errorf("kind = %q, want %q", kind, tc.wantKind)
			}
		})
	}
}

func TestCompactJSON_KeepsNonASCII(t *testing.T) {
	got := compactJSON(map[string]interface{}{"q": "soru metni çğü"})
	want := `{"q":"soru metni çğü"}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripOuterQuotes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"'hello'"`, "'hello'"},
		{`""`, ""},
		{`"`, `"`},
		{`"mismatched'`, `"mismatched'`},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := stripOuterQuotes(tc.in); got != tc.want {
			t.Errorf("stripOuterQuotes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package llm

import "testing"

func TestText(t *testing.T) {
	t.Parallel()

	if got := Text(nil); got != "" {
		t.Fatalf("Text(nil) = %q", got)
	}

	resp := &Response{Content: []ContentBlock{
		{Type: "text", Text: "hello "},
		{Type: "other", Text: "skipped"},
		{Type: "text", Text: "world"},
	}}
	if got := Text(resp); got != "hello world" {
		t.Fatalf("Text = %q", got)
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	var out struct {
		Questions []string `json:"questions"`
	}

	raw := "```json\n{\"questions\": [\"Q1?\", \"Q2?\"]}\n```"
	if err := ParseJSON(raw, &out); err != nil {
		t.Fatalf("ParseJSON(fenced): %v", err)
	}
	if len(out.Questions) != 2 {
		t.Fatalf("questions %v", out.Questions)
	}

	raw = "Here you go: {\"questions\": [\"Q1?\"]} hope it helps"
	if err := ParseJSON(raw, &out); err != nil {
		t.Fatalf("ParseJSON(prose): %v", err)
	}
	if len(out.Questions) != 1 {
		t.Fatalf("questions %v", out.Questions)
	}

	if err := ParseJSON("", &out); err == nil {
		t.Fatalf("ParseJSON(empty): expected error")
	}
	if err := ParseJSON("no json here", &out); err == nil {
		t.Fatalf("ParseJSON(no object): expected error")
	}
}

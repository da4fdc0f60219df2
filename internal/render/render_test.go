package render

import (
	"strings"
	"testing"
)

func TestHTMLRendersMarkdown(t *testing.T) {
	got, err := HTML("# Release notes\n\nShipped **today**.")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(got, `<h1 id="release-notes">Release notes</h1>`) {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "<strong>today</strong>") {
		t.Errorf("missing emphasis in %q", got)
	}
}

func TestHTMLPassesRawHTMLThrough(t *testing.T) {
	got, err := HTML(`<p class="lead">Hello</p>`)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(got, `<p class="lead">Hello</p>`) {
		t.Errorf("raw HTML was altered: %q", got)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "   ", ""},
		{"markdown", "# Title\n\nFirst paragraph.\n\n- one\n- two", "Title\nFirst paragraph.\none\ntwo"},
		{"html", "<p>Hello <em>there</em></p><script>alert(1)</script><p>Bye</p>", "Hello there\nBye"},
		{"line breaks", "<p>a<br>b</p>", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.content); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		text  string
		limit int
		want  string
	}{
		{"short text", 20, "short text"},
		{"  spaced \n  out  ", 20, "spaced out"},
		{"the quick brown fox", 12, "the quick..."},
		{"abcdefghij", 4, "abcd..."},
		{"", 10, ""},
		{"anything", 0, ""},
		{"日本語のテキスト", 3, "日本語..."},
	}

	for _, tt := range tests {
		if got := Summary(tt.text, tt.limit); got != tt.want {
			t.Errorf("Summary(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
		}
	}
}

package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHeading(t *testing.T) {
	got := Render("# Hello")
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Hello") {
		t.Errorf("Render(# Hello) = %q, want h1", got)
	}
}

func TestRenderInlineFormatting(t *testing.T) {
	got := Render("some **bold** and *italic* text")
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("missing strong in %q", got)
	}
	if !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("missing em in %q", got)
	}
}

func TestRenderList(t *testing.T) {
	got := Render("- one\n- two\n")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>one</li>") {
		t.Errorf("missing list markup in %q", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	got := Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("missing table markup in %q", got)
	}
}

func TestRenderStripsScript(t *testing.T) {
	got := Render("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived sanitization: %q", got)
	}
}

func TestRenderLinkRelNofollow(t *testing.T) {
	got := Render("[site](https://example.com)")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("missing link in %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var sb strings.Builder
	if err := Markdown("# Title").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render component: %v", err)
	}
	if !strings.Contains(sb.String(), "<h1") {
		t.Errorf("component output = %q, want h1", sb.String())
	}
}

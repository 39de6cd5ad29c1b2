package studiosite

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"snake_case_title", "snake-case-title"},
		{"Already-Hyphenated", "already-hyphenated"},
		{"Mixed -- separators __ here", "mixed-separators-here"},
		{"---trim edges---", "trim-edges"},
		{"UPPER CASE", "upper-case"},
		{"100% Pure Go", "100-pure-go"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	if Slugify("Same Title") != Slugify("Same Title") {
		t.Error("Slugify must be deterministic")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog", "my-post"}, "https://example.com/blog/my-post/"},
		{"https://example.com/sub", []string{"blog"}, "https://example.com/sub/blog/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" go ", "", "  ", "web"})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("FilterEmpty = %v, want [go web]", got)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	post := BlogPost{
		Title:       "Test Post",
		Excerpt:     "excerpt",
		Author:      "Author",
		PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"a", "b"},
		Slug:        "test-post",
	}
	cfg := SiteConfig{Name: "Flium", URL: "https://example.com"}

	raw := BlogPostingJsonLD(post, cfg)
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["@type"] != "BlogPosting" {
		t.Errorf("@type = %v, want BlogPosting", data["@type"])
	}
	if data["datePublished"] != "2024-03-01" {
		t.Errorf("datePublished = %v, want 2024-03-01", data["datePublished"])
	}
	if !strings.Contains(data["url"].(string), "/blog/test-post/") {
		t.Errorf("url = %v, want path /blog/test-post/", data["url"])
	}
}

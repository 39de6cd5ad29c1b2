package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua      string
		browser string
		os      string
		device  string
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36", "Chrome", "Windows", "Desktop"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15", "Safari", "macOS", "Desktop"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", "Safari", "iOS", "Mobile"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0", "Firefox", "Linux", "Desktop"},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36", "Chrome", "Android", "Mobile"},
	}
	for _, tt := range tests {
		browser, os, device := ParseUserAgent(tt.ua)
		if browser != tt.browser || os != tt.os || device != tt.device {
			t.Errorf("ParseUserAgent(%q) = %s/%s/%s, want %s/%s/%s",
				tt.ua, browser, os, device, tt.browser, tt.os, tt.device)
		}
	}
}

func TestIsBot(t *testing.T) {
	if !IsBot("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)") {
		t.Error("Googlebot should be detected as a bot")
	}
	if IsBot("Mozilla/5.0 (Windows NT 10.0) Chrome/120.0") {
		t.Error("Chrome should not be detected as a bot")
	}
}

func TestCleanReferrer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Direct"},
		{"https://www.google.com/search?q=flium", "Google"},
		{"https://duckduckgo.com/", "DuckDuckGo"},
		{"https://www.example.org/some/page", "example.org"},
		{"not a url", "Other"},
	}
	for _, tt := range tests {
		if got := CleanReferrer(tt.in); got != tt.want {
			t.Errorf("CleanReferrer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	val, err := s.GetSetting("missing")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "" {
		t.Errorf("missing setting = %q, want empty", val)
	}

	if err := s.SetSetting("key", "v1"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := s.SetSetting("key", "v2"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}
	val, err = s.GetSetting("key")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "v2" {
		t.Errorf("setting = %q, want v2", val)
	}
}

func TestSaveVisitAndStats(t *testing.T) {
	s := setupTestStore(t)

	now := time.Now().UTC()
	visits := []*Visit{
		{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", OS: "Linux", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: now},
		{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", OS: "Linux", Device: "Desktop", Path: "/blog/post/", Referrer: "Google", Timestamp: now},
		{VisitorID: "v2", IPHash: "h2", Browser: "Firefox", OS: "Windows", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: now},
	}
	for _, v := range visits {
		if err := s.SaveVisit(v); err != nil {
			t.Fatalf("SaveVisit failed: %v", err)
		}
	}

	stats, err := s.GetStats(now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", stats.TotalViews)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/" {
		t.Errorf("TopPages = %v, want / first", stats.TopPages)
	}
}

func TestUpdateVisitDuration(t *testing.T) {
	s := setupTestStore(t)

	v := &Visit{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", OS: "Linux", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: time.Now().UTC()}
	if err := s.SaveVisit(v); err != nil {
		t.Fatalf("SaveVisit failed: %v", err)
	}
	if err := s.UpdateVisitDuration("v1", "/", 42); err != nil {
		t.Fatalf("UpdateVisitDuration failed: %v", err)
	}

	var dur int
	if err := s.db.QueryRow(`SELECT duration_sec FROM visits WHERE visitor_id = 'v1'`).Scan(&dur); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if dur != 42 {
		t.Errorf("duration_sec = %d, want 42", dur)
	}
}

func TestDeleteVisitsBefore(t *testing.T) {
	s := setupTestStore(t)

	old := &Visit{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", OS: "Linux", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: time.Now().UTC().AddDate(-1, 0, 0)}
	fresh := &Visit{VisitorID: "v2", IPHash: "h2", Browser: "Chrome", OS: "Linux", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: time.Now().UTC()}
	for _, v := range []*Visit{old, fresh} {
		if err := s.SaveVisit(v); err != nil {
			t.Fatalf("SaveVisit failed: %v", err)
		}
	}

	deleted, err := s.DeleteVisitsBefore(time.Now().UTC().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("DeleteVisitsBefore failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)

	if !rl.allow("ip") || !rl.allow("ip") {
		t.Fatal("first two requests should be allowed")
	}
	if rl.allow("ip") {
		t.Fatal("third request should be blocked")
	}
	if !rl.allow("other") {
		t.Fatal("other key should be independent")
	}
}

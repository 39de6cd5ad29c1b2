package studiosite

import "testing"

func setupCategoryStore(t *testing.T) *CategoryStore {
	t.Helper()
	s := NewCategoryStore(t.TempDir(), nil)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return s
}

func TestInitializeSeedsCategories(t *testing.T) {
	s := setupCategoryStore(t)

	categories := s.All()
	if len(categories) != 3 {
		t.Fatalf("len(categories) = %d, want 3", len(categories))
	}

	// File order preserved.
	wantSlugs := []string{"technology", "design", "company"}
	for i, slug := range wantSlugs {
		if categories[i].Slug != slug {
			t.Errorf("categories[%d].Slug = %q, want %q", i, categories[i].Slug, slug)
		}
	}
}

func TestCategoryBySlug(t *testing.T) {
	s := setupCategoryStore(t)

	c, err := s.BySlug("design")
	if err != nil {
		t.Fatalf("BySlug failed: %v", err)
	}
	if c.Name != "デザイン" {
		t.Errorf("Name = %q, want %q", c.Name, "デザイン")
	}

	if _, err := s.BySlug("nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateCategory(t *testing.T) {
	s := setupCategoryStore(t)

	c, err := s.Create(CreateCategoryInput{
		Name:        "イベント",
		Slug:        "events",
		Color:       "#FFB347",
		Description: "イベント情報",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.ID == "" {
		t.Error("ID should be assigned")
	}

	categories := s.All()
	if len(categories) != 4 {
		t.Fatalf("len(categories) = %d, want 4", len(categories))
	}
	if categories[3].Slug != "events" {
		t.Errorf("new category should be appended last, got %q", categories[3].Slug)
	}
}

func TestCreateCategoryAllowsDuplicates(t *testing.T) {
	s := setupCategoryStore(t)

	first, err := s.Create(CreateCategoryInput{Name: "技術", Slug: "technology", Color: "#000000"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := s.Create(CreateCategoryInput{Name: "技術", Slug: "technology", Color: "#000000"})
	if err != nil {
		t.Fatalf("duplicate Create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("duplicate categories must still get distinct ids")
	}
	if len(s.All()) != 5 {
		t.Errorf("len = %d, want 5", len(s.All()))
	}
}

package studiosite

import (
	"testing"
	"time"
)

func setupCache(t *testing.T) (*PostCache, *PostStore) {
	t.Helper()
	dir := t.TempDir()
	posts := NewPostStore(dir, nil)
	cats := NewCategoryStore(dir, nil)
	if err := posts.Initialize(); err != nil {
		t.Fatalf("Initialize posts failed: %v", err)
	}
	if err := cats.Initialize(); err != nil {
		t.Fatalf("Initialize categories failed: %v", err)
	}
	return NewPostCache(posts, cats, time.Minute), posts
}

func TestCacheListPosts(t *testing.T) {
	cache, _ := setupCache(t)

	posts := cache.ListPosts("")
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}

	tagged := cache.ListPosts("React")
	if len(tagged) != 1 || tagged[0].ID != "1" {
		t.Errorf("ListPosts(React) = %v, want just post 1", tagged)
	}

	if got := cache.ListPosts("no-such-tag"); len(got) != 0 {
		t.Errorf("ListPosts(no-such-tag) = %v, want empty", got)
	}
}

func TestCacheGetPost(t *testing.T) {
	cache, _ := setupCache(t)

	post, err := cache.GetPost("react-18-new-features-performance")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.ID != "1" {
		t.Errorf("ID = %q, want 1", post.ID)
	}

	if _, err := cache.GetPost("nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	cache, store := setupCache(t)

	if got := cache.ListPosts(""); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	if _, err := store.Create(CreatePostInput{
		Title:    "Fresh Post",
		Content:  "c",
		Excerpt:  "e",
		Category: "技術",
		Author:   "Tester",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Within the TTL the cache still serves the old snapshot.
	if got := cache.ListPosts(""); len(got) != 3 {
		t.Fatalf("cache reloaded before invalidation, len = %d", len(got))
	}

	cache.Invalidate()
	if got := cache.ListPosts(""); len(got) != 4 {
		t.Fatalf("len after invalidate = %d, want 4", len(got))
	}
}

func TestCacheCategories(t *testing.T) {
	cache, _ := setupCache(t)

	if got := cache.Categories(); len(got) != 3 {
		t.Errorf("len(categories) = %d, want 3", len(got))
	}
}

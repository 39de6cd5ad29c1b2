package studiosite

import (
	"sync"
	"time"
)

// PostCache is an in-memory cache of posts and categories with a TTL, used
// only by the public HTML pages. The stores themselves stay read-per-call;
// every mutation invalidates the cache.
type PostCache struct {
	mu         sync.RWMutex
	posts      []BlogPost
	categories []BlogCategory
	fetched    time.Time
	ttl        time.Duration
	store      *PostStore
	cats       *CategoryStore
}

// NewPostCache creates a PostCache backed by the given stores.
func NewPostCache(posts *PostStore, cats *CategoryStore, ttl time.Duration) *PostCache {
	return &PostCache{store: posts, cats: cats, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.categories = nil
	c.mu.Unlock()
}

// ensureLoaded returns cached posts and categories after ensuring the cache
// is fresh. It tries a read lock first; a write lock only when reloading.
func (c *PostCache) ensureLoaded() ([]BlogPost, []BlogCategory) {
	c.mu.RLock()
	if c.valid() {
		posts, categories := c.posts, c.categories
		c.mu.RUnlock()
		return posts, categories
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		posts, _ := c.store.All(PostFilters{})
		c.posts = posts
		c.categories = c.cats.All()
		c.fetched = time.Now()
	}
	return c.posts, c.categories
}

// ListPosts returns all posts newest-first, optionally filtered by tag.
func (c *PostCache) ListPosts(tag string) []BlogPost {
	posts, _ := c.ensureLoaded()
	if tag == "" {
		return posts
	}
	var filtered []BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// Categories returns all categories.
func (c *PostCache) Categories() []BlogCategory {
	_, categories := c.ensureLoaded()
	return categories
}

// GetPost returns a single post by slug from the cache, or ErrNotFound.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	posts, _ := c.ensureLoaded()
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

package studiosite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

const postsFile = "posts.json"

// PostStore owns the blog post collection on durable flat storage. Every
// operation performs a full read of the backing file; mutating operations
// hold the store mutex for the whole read-modify-write cycle, so two writers
// cannot overwrite each other's changes within the process.
type PostStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

// NewPostStore creates a post store backed by posts.json under dir.
func NewPostStore(dir string, log *zap.Logger) *PostStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostStore{path: filepath.Join(dir, postsFile), log: log}
}

// Initialize ensures the data directory and posts file exist, seeding the
// file with the fixed example posts when absent. Idempotent: an existing
// file is never touched.
func (s *PostStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create blog data dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := writeCollection(s.path, seedPosts()); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	return nil
}

// read loads the full collection. Read failures degrade to an empty
// collection: listing must keep working even if the file is missing or
// corrupt. The error is logged, never propagated.
func (s *PostStore) read() []BlogPost {
	posts := []BlogPost{}
	if err := readCollection(s.path, &posts); err != nil {
		s.log.Error("reading posts file", zap.String("path", s.path), zap.Error(err))
		return []BlogPost{}
	}
	return posts
}

// All returns posts matching the filters, newest-first by publishedAt, along
// with the total number of matches before pagination. Filters conjoin;
// Search matches title, excerpt, or content case-insensitively.
func (s *PostStore) All(f PostFilters) ([]BlogPost, int) {
	posts := s.read()

	if f.Category != "" {
		posts = lo.Filter(posts, func(p BlogPost, _ int) bool { return p.Category == f.Category })
	}
	if f.Tag != "" {
		posts = lo.Filter(posts, func(p BlogPost, _ int) bool { return lo.Contains(p.Tags, f.Tag) })
	}
	if f.Author != "" {
		posts = lo.Filter(posts, func(p BlogPost, _ int) bool { return p.Author == f.Author })
	}
	if f.Featured != nil {
		posts = lo.Filter(posts, func(p BlogPost, _ int) bool { return p.Featured == *f.Featured })
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		posts = lo.Filter(posts, func(p BlogPost, _ int) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Excerpt), term) ||
				strings.Contains(strings.ToLower(p.Content), term)
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})

	total := len(posts)
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.Limit
		if start >= total {
			return []BlogPost{}, total
		}
		end := start + f.Limit
		if end > total {
			end = total
		}
		posts = posts[start:end]
	}
	return posts, total
}

// ByID returns the post with the given id, or ErrNotFound.
func (s *PostStore) ByID(id string) (BlogPost, error) {
	for _, p := range s.read() {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// BySlug returns the post with the given slug, or ErrNotFound.
func (s *PostStore) BySlug(slug string) (BlogPost, error) {
	for _, p := range s.read() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Create assigns a fresh id, derives the slug from the title, stamps both
// timestamps with the same instant, appends the post, and persists the
// collection. Write failures propagate: the caller must treat the post as
// not created.
func (s *PostStore) Create(in CreatePostInput) (BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	post := BlogPost{
		ID:          NewID(),
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Category:    in.Category,
		Author:      in.Author,
		PublishedAt: now,
		UpdatedAt:   now,
		Tags:        tags,
		Featured:    in.Featured,
		Slug:        Slugify(in.Title),
		CoverImage:  in.CoverImage,
	}

	posts := s.read()
	posts = append(posts, post)
	if err := writeCollection(s.path, posts); err != nil {
		return BlogPost{}, fmt.Errorf("save posts: %w", err)
	}
	return post, nil
}

// Update merges the non-nil fields of in onto the post with the given id and
// persists. The slug is recomputed when the title is present and differs from
// the stored one; id and publishedAt are never altered, updatedAt always is.
// Returns ErrNotFound without writing when no post matches.
func (s *PostStore) Update(id string, in UpdatePostInput) (BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.read()
	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return BlogPost{}, ErrNotFound
	}

	post := posts[idx]
	if in.Title != nil {
		if *in.Title != post.Title {
			post.Slug = Slugify(*in.Title)
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}
	if in.Featured != nil {
		post.Featured = *in.Featured
	}
	if in.CoverImage != nil {
		post.CoverImage = *in.CoverImage
	}
	post.UpdatedAt = time.Now().UTC()

	posts[idx] = post
	if err := writeCollection(s.path, posts); err != nil {
		return BlogPost{}, fmt.Errorf("save posts: %w", err)
	}
	return post, nil
}

// Delete removes the post with the given id. Returns ErrNotFound without
// writing when no post matches.
func (s *PostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.read()
	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	posts = append(posts[:idx], posts[idx+1:]...)
	if err := writeCollection(s.path, posts); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	return nil
}

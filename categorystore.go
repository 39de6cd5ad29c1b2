package studiosite

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const categoriesFile = "categories.json"

// CategoryStore owns the category collection. Categories are append-only:
// the store exposes no update or delete.
type CategoryStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

// NewCategoryStore creates a category store backed by categories.json under dir.
func NewCategoryStore(dir string, log *zap.Logger) *CategoryStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CategoryStore{path: filepath.Join(dir, categoriesFile), log: log}
}

// Initialize seeds the categories file with the fixed example categories when
// it does not exist yet. Idempotent.
func (s *CategoryStore) Initialize() error {
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
	if err := writeCollection(s.path, seedCategories()); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func (s *CategoryStore) read() []BlogCategory {
	categories := []BlogCategory{}
	if err := readCollection(s.path, &categories); err != nil {
		s.log.Error("reading categories file", zap.String("path", s.path), zap.Error(err))
		return []BlogCategory{}
	}
	return categories
}

// All returns the full collection in file order.
func (s *CategoryStore) All() []BlogCategory {
	return s.read()
}

// BySlug returns the category with the given slug, or ErrNotFound.
func (s *CategoryStore) BySlug(slug string) (BlogCategory, error) {
	for _, c := range s.read() {
		if c.Slug == slug {
			return c, nil
		}
	}
	return BlogCategory{}, ErrNotFound
}

// Create assigns a fresh id, appends the category, and persists. Duplicate
// names or slugs are accepted silently; referential integrity with posts is
// the caller's responsibility.
func (s *CategoryStore) Create(in CreateCategoryInput) (BlogCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := BlogCategory{
		ID:          NewID(),
		Name:        in.Name,
		Slug:        in.Slug,
		Color:       in.Color,
		Description: in.Description,
	}

	categories := s.read()
	categories = append(categories, category)
	if err := writeCollection(s.path, categories); err != nil {
		return BlogCategory{}, fmt.Errorf("save categories: %w", err)
	}
	return category, nil
}

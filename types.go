package studiosite

import "time"

// BlogPost is the core content record persisted in the posts file and served
// by the blog API. JSON keys match the on-disk format.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Slug        string    `json:"slug"`
	CoverImage  string    `json:"coverImage,omitempty"`
}

// BlogCategory groups posts for navigation and carries a presentation color.
type BlogCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// CreatePostInput carries caller-supplied fields for a new post. The store
// assigns id, slug, and timestamps.
type CreatePostInput struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Excerpt    string   `json:"excerpt" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	Author     string   `json:"author" validate:"required"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	CoverImage string   `json:"coverImage"`
}

// UpdatePostInput is a partial update: nil fields are left untouched.
type UpdatePostInput struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	Category   *string   `json:"category"`
	Author     *string   `json:"author"`
	Tags       *[]string `json:"tags"`
	Featured   *bool     `json:"featured"`
	CoverImage *string   `json:"coverImage"`
}

// CreateCategoryInput carries caller-supplied fields for a new category.
// Unlike posts, the slug is supplied by the caller rather than derived.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Description string `json:"description"`
}

// PostFilters narrows PostStore.All. All set filters must match (AND), except
// Search which matches any of title, excerpt, or content case-insensitively.
// Page/Limit paginate the filtered, sorted result; Limit <= 0 disables paging.
type PostFilters struct {
	Category string
	Tag      string
	Author   string
	Featured *bool
	Search   string
	Page     int
	Limit    int
}

// Image describes an uploaded and processed cover image.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploaded_at"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

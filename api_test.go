package studiosite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	log := zap.NewNop()

	a := &App{
		Config:     SiteConfig{Name: "Flium", URL: "http://localhost:3000"},
		Echo:       echo.New(),
		Posts:      NewPostStore(dir, log),
		Categories: NewCategoryStore(dir, log),
		Log:        log,
		validate:   validator.New(),
	}
	require.NoError(t, a.Posts.Initialize())
	require.NoError(t, a.Categories.Initialize())
	a.Cache = NewPostCache(a.Posts, a.Categories, time.Minute)

	api := a.Echo.Group("/api/blog")
	api.GET("/posts", a.handleAPIListPosts)
	api.POST("/posts", a.handleAPICreatePost)
	api.GET("/posts/:id", a.handleAPIGetPost)
	api.PUT("/posts/:id", a.handleAPIUpdatePost)
	api.DELETE("/posts/:id", a.handleAPIDeletePost)
	api.GET("/posts/slug/:slug", a.handleAPIGetPostBySlug)
	api.GET("/categories", a.handleAPIListCategories)
	api.POST("/categories", a.handleAPICreateCategory)
	api.POST("/init", a.handleAPIInit)

	return a
}

func doJSON(a *App, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAPIListPosts(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodGet, "/api/blog/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)

	var posts []BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, "1", posts[0].ID, "newest post first")
}

func TestAPIListPostsFiltered(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodGet, "/api/blog/posts?featured=true", "")
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	// Count reflects matches before pagination.
	rec = doJSON(a, http.MethodGet, "/api/blog/posts?page=1&limit=2", "")
	env = decodeEnvelope(t, rec)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)
	var posts []BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 2)
}

func TestAPICreatePost(t *testing.T) {
	a := newTestApp(t)

	body := `{"title":"New Post","content":"# Body","excerpt":"short","category":"技術","author":"Tester","tags":["go"],"featured":false}`
	rec := doJSON(a, http.MethodPost, "/api/blog/posts", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var post BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "new-post", post.Slug)

	// Round trip through the slug endpoint.
	rec = doJSON(a, http.MethodGet, "/api/blog/posts/slug/new-post", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPICreatePostValidation(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodPost, "/api/blog/posts", `{"title":"Only Title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing required fields", env.Error)

	rec = doJSON(a, http.MethodPost, "/api/blog/posts", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid request body", env.Error)
}

func TestAPIGetPostNotFound(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodGet, "/api/blog/posts/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Post not found", env.Error)

	rec = doJSON(a, http.MethodGet, "/api/blog/posts/slug/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIUpdatePost(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodPut, "/api/blog/posts/1", `{"excerpt":"rewritten"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var post BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "rewritten", post.Excerpt)
	assert.Equal(t, "1", post.ID)

	rec = doJSON(a, http.MethodPut, "/api/blog/posts/nope", `{"excerpt":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIDeletePost(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodDelete, "/api/blog/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Post deleted successfully", env.Message)

	rec = doJSON(a, http.MethodDelete, "/api/blog/posts/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPICategories(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodGet, "/api/blog/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var categories []BlogCategory
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 3)

	body := `{"name":"イベント","slug":"events","color":"#FFB347"}`
	rec = doJSON(a, http.MethodPost, "/api/blog/categories", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(a, http.MethodPost, "/api/blog/categories", `{"name":"no slug"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIInit(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(a, http.MethodPost, "/api/blog/init", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Blog data initialized successfully", env.Message)
}

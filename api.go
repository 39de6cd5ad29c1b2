package studiosite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// apiResponse is the uniform envelope every blog API endpoint returns.
// HTTP status codes are layered on top for non-2xx cases.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func apiOK(c echo.Context, code int, data any) error {
	return c.JSON(code, apiResponse{Success: true, Data: data})
}

func apiError(c echo.Context, code int, msg string) error {
	return c.JSON(code, apiResponse{Success: false, Error: msg})
}

func postFiltersFromQuery(c echo.Context) PostFilters {
	f := PostFilters{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Author:   c.QueryParam("author"),
		Search:   c.QueryParam("search"),
	}
	if c.QueryParam("featured") == "true" {
		featured := true
		f.Featured = &featured
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		f.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		f.Limit = limit
	}
	return f
}

func (a *App) handleAPIListPosts(c echo.Context) error {
	posts, total := a.Posts.All(postFiltersFromQuery(c))
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: posts, Count: &total})
}

func (a *App) handleAPICreatePost(c echo.Context) error {
	var in CreatePostInput
	if err := c.Bind(&in); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := a.validate.Struct(in); err != nil {
		return apiError(c, http.StatusBadRequest, "Missing required fields")
	}
	post, err := a.Posts.Create(in)
	if err != nil {
		a.Log.Error("creating post", zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to create post")
	}
	a.Cache.Invalidate()
	return apiOK(c, http.StatusCreated, post)
}

func (a *App) handleAPIGetPost(c echo.Context) error {
	post, err := a.Posts.ByID(c.Param("id"))
	if err != nil {
		return apiError(c, http.StatusNotFound, "Post not found")
	}
	return apiOK(c, http.StatusOK, post)
}

func (a *App) handleAPIGetPostBySlug(c echo.Context) error {
	post, err := a.Posts.BySlug(c.Param("slug"))
	if err != nil {
		return apiError(c, http.StatusNotFound, "Post not found")
	}
	return apiOK(c, http.StatusOK, post)
}

func (a *App) handleAPIUpdatePost(c echo.Context) error {
	var in UpdatePostInput
	if err := c.Bind(&in); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request body")
	}
	post, err := a.Posts.Update(c.Param("id"), in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apiError(c, http.StatusNotFound, "Post not found")
		}
		a.Log.Error("updating post", zap.String("id", c.Param("id")), zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to update post")
	}
	a.Cache.Invalidate()
	return apiOK(c, http.StatusOK, post)
}

func (a *App) handleAPIDeletePost(c echo.Context) error {
	if err := a.Posts.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apiError(c, http.StatusNotFound, "Post not found")
		}
		a.Log.Error("deleting post", zap.String("id", c.Param("id")), zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to delete post")
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Post deleted successfully"})
}

func (a *App) handleAPIListCategories(c echo.Context) error {
	return apiOK(c, http.StatusOK, a.Categories.All())
}

func (a *App) handleAPICreateCategory(c echo.Context) error {
	var in CreateCategoryInput
	if err := c.Bind(&in); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := a.validate.Struct(in); err != nil {
		return apiError(c, http.StatusBadRequest, "Missing required fields")
	}
	category, err := a.Categories.Create(in)
	if err != nil {
		a.Log.Error("creating category", zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to create category")
	}
	a.Cache.Invalidate()
	return apiOK(c, http.StatusCreated, category)
}

func (a *App) handleAPIInit(c echo.Context) error {
	if err := a.Posts.Initialize(); err != nil {
		a.Log.Error("initializing posts", zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to initialize blog data")
	}
	if err := a.Categories.Initialize(); err != nil {
		a.Log.Error("initializing categories", zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "Failed to initialize blog data")
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Blog data initialized successfully"})
}

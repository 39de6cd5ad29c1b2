package studiosite

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if id == "new" {
		return Render(c, a.Views.AdminPostForm(BlogPost{}, a.Categories.All(), CsrfToken(c)))
	}
	post, err := a.Posts.ByID(id)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}
	return Render(c, a.Views.AdminPostForm(post, a.Categories.All(), CsrfToken(c)))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id := strings.TrimSpace(c.FormValue("id"))
	title := strings.TrimSpace(c.FormValue("title"))
	content := c.FormValue("content")
	excerpt := strings.TrimSpace(c.FormValue("excerpt"))
	category := strings.TrimSpace(c.FormValue("category"))
	author := strings.TrimSpace(c.FormValue("author"))
	coverImage := strings.TrimSpace(c.FormValue("coverImage"))
	tags := FilterEmpty(strings.Split(c.FormValue("tags"), ","))
	featured := c.FormValue("featured") != ""

	if id == "" {
		in := CreatePostInput{
			Title:      title,
			Content:    content,
			Excerpt:    excerpt,
			Category:   category,
			Author:     author,
			Tags:       tags,
			Featured:   featured,
			CoverImage: coverImage,
		}
		if err := a.validate.Struct(in); err != nil {
			return c.Redirect(http.StatusSeeOther, "/admin/?msg=Title%2C+content%2C+excerpt%2C+category+and+author+are+required.")
		}
		if _, err := a.Posts.Create(in); err != nil {
			return err
		}
	} else {
		in := UpdatePostInput{
			Title:      &title,
			Content:    &content,
			Excerpt:    &excerpt,
			Category:   &category,
			Author:     &author,
			Tags:       &tags,
			Featured:   &featured,
			CoverImage: &coverImage,
		}
		if _, err := a.Posts.Update(id, in); err != nil {
			if errors.Is(err, ErrNotFound) {
				return c.Redirect(http.StatusSeeOther, "/admin/?msg=Post+not+found.")
			}
			return err
		}
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Posts.Delete(c.Param("id")); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) handleAdminCreateCategory(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	in := CreateCategoryInput{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Slug:        strings.TrimSpace(c.FormValue("slug")),
		Color:       strings.TrimSpace(c.FormValue("color")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	if err := a.validate.Struct(in); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Name%2C+slug+and+color+are+required.")
	}
	if _, err := a.Categories.Create(in); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "category created")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, _ := a.Posts.All(PostFilters{})
	return Render(c, a.Views.AdminDashboard(posts, a.Categories.All(), msg, CsrfToken(c)))
}

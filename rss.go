package studiosite

import (
	"net/http"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
)

func (a *App) handleFeed(c echo.Context) error {
	posts := a.Cache.ListPosts("")

	feed := &feeds.Feed{
		Title:       a.Config.Name,
		Link:        &feeds.Link{Href: BuildURL(a.Config.URL)},
		Description: a.Config.Description,
	}
	if a.Config.Author != "" {
		feed.Author = &feeds.Author{Name: a.Config.Author}
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].UpdatedAt
	}

	for _, p := range posts {
		postURL := BuildURL(a.Config.URL, "blog", p.Slug)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          postURL,
			Title:       p.Title,
			Link:        &feeds.Link{Href: postURL},
			Description: p.Excerpt,
			Author:      &feeds.Author{Name: p.Author},
			Created:     p.PublishedAt,
			Updated:     p.UpdatedAt,
		})
	}

	out, err := feed.ToRss()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(out))
}

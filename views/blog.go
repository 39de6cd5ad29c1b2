package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/flium/studiosite"
	"github.com/flium/studiosite/markdown"
)

// Post renders a single blog post page with markdown content and related posts.
func (v *Views) Post(post studiosite.BlogPost, related []studiosite.BlogPost, categories []studiosite.BlogCategory) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<article class=\"post\">")
		b.WriteString("<header>")
		b.WriteString("<span class=\"category\" style=\"--category-color:" + esc(categoryColor(post.Category, categories)) + "\">" + esc(post.Category) + "</span>")
		b.WriteString("<h1>" + esc(post.Title) + "</h1>")
		b.WriteString("<div class=\"meta\"><time datetime=\"" + post.PublishedAt.Format("2006-01-02") + "\">" + formatDate(post.PublishedAt) + "</time><span>" + esc(post.Author) + "</span></div>")
		if len(post.Tags) > 0 {
			b.WriteString("<ul class=\"tags\">")
			for _, t := range post.Tags {
				b.WriteString("<li><a href=\"/?tag=" + studiosite.PathEscape(t) + "#blog\">" + esc(t) + "</a></li>")
			}
			b.WriteString("</ul>")
		}
		if post.CoverImage != "" {
			b.WriteString("<img class=\"cover\" src=\"" + esc(post.CoverImage) + "\" alt=\"\"/>")
		}
		b.WriteString("</header>")
		b.WriteString("<div class=\"post-body\">")
		b.WriteString(markdown.Render(post.Content))
		b.WriteString("</div>")
		b.WriteString("</article>")

		if len(related) > 0 {
			b.WriteString("<aside class=\"related\"><h2>関連記事</h2><div class=\"post-grid\">")
			for _, p := range related {
				v.postCard(&b, p, categories)
			}
			b.WriteString("</div></aside>")
		}

		meta := studiosite.PageMeta{
			Title:       post.Title + " | " + v.Config.Name,
			Description: post.Excerpt,
			URL:         studiosite.BuildURL(v.Config.URL, "blog", post.Slug),
			OGType:      "article",
		}
		page := v.layout(meta, studiosite.BlogPostingJsonLD(post, v.Config), b.String())
		_, err := io.WriteString(w, page)
		return err
	})
}

// Package views contains the templ components for the Flium studio site:
// the public marketing pages, blog pages, and the admin dashboard. Components
// are built by hand with templ.ComponentFunc.
package views

import (
	"context"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/flium/studiosite"
)

// Views renders all pages for a site with the given configuration.
type Views struct {
	Config studiosite.SiteConfig
}

// New creates a Views bound to the site configuration.
func New(cfg studiosite.SiteConfig) *Views {
	return &Views{Config: cfg}
}

// Funcs returns the ViewFuncs wiring for the engine.
func (v *Views) Funcs() studiosite.ViewFuncs {
	return studiosite.ViewFuncs{
		Home:           v.Home,
		Post:           v.Post,
		AdminLogin:     v.AdminLogin,
		AdminDashboard: v.AdminDashboard,
		AdminPostForm:  v.AdminPostForm,
		AdminImages:    v.AdminImages,
		NotFound:       v.NotFound,
		ServerError:    v.ServerError,
	}
}

func component(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func formatDate(t time.Time) string {
	return t.Format("2006.01.02")
}

// categoryColor resolves the presentation color for a post's category name.
func categoryColor(name string, categories []studiosite.BlogCategory) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Color
		}
	}
	return "#F0F3F5"
}

// layout wraps body in the page shell: head with SEO/OpenGraph metadata,
// navigation, footer, and the analytics collector.
func (v *Views) layout(meta studiosite.PageMeta, jsonLD string, body string) string {
	cfg := v.Config
	title := meta.Title
	if title == "" {
		title = cfg.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html lang=\"ja\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/>")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + esc(title) + "</title>")
	b.WriteString("<meta name=\"description\" content=\"" + esc(desc) + "\"/>")
	b.WriteString("<meta property=\"og:title\" content=\"" + esc(title) + "\"/>")
	b.WriteString("<meta property=\"og:description\" content=\"" + esc(desc) + "\"/>")
	b.WriteString("<meta property=\"og:type\" content=\"" + esc(ogType) + "\"/>")
	if meta.URL != "" {
		b.WriteString("<meta property=\"og:url\" content=\"" + esc(meta.URL) + "\"/>")
		b.WriteString("<link rel=\"canonical\" href=\"" + esc(meta.URL) + "\"/>")
	}
	b.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>")
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
	b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(cfg.Name) + "\" href=\"/feed.xml\"/>")
	if jsonLD != "" {
		b.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
	}
	b.WriteString("</head><body>")
	v.nav(&b)
	b.WriteString("<main>")
	b.WriteString(body)
	b.WriteString("</main>")
	v.footer(&b)
	b.WriteString("<script src=\"/public/analytics.js\" defer></script>")
	b.WriteString("</body></html>")
	return b.String()
}

func (v *Views) nav(b *strings.Builder) {
	b.WriteString("<nav class=\"site-nav\"><a class=\"brand\" href=\"/\">" + esc(v.Config.Name) + "</a>")
	b.WriteString("<ul>")
	b.WriteString("<li><a href=\"/#philosophy\">理念</a></li>")
	b.WriteString("<li><a href=\"/#about\">私たちについて</a></li>")
	b.WriteString("<li><a href=\"/#services\">ソリューション</a></li>")
	b.WriteString("<li><a href=\"/#portfolio\">実績</a></li>")
	b.WriteString("<li><a href=\"/#blog\">ブログ</a></li>")
	b.WriteString("<li><a href=\"/#contact\">お問い合わせ</a></li>")
	b.WriteString("</ul></nav>")
}

func (v *Views) footer(b *strings.Builder) {
	b.WriteString("<footer class=\"site-footer\">")
	b.WriteString("<div class=\"footer-brand\">" + esc(v.Config.Name) + "</div>")
	b.WriteString("<div class=\"footer-contact\"><span>info@flium.co.jp</span><span>03-1234-5678</span><span>東京都渋谷区恵比寿</span></div>")
	b.WriteString("<a class=\"back-to-top\" href=\"#top\">トップに戻る</a>")
	b.WriteString("</footer>")
}

package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/flium/studiosite"
)

type service struct {
	Title       string
	Description string
}

var services = []service{
	{"デジタルフロー設計", "情報、体験、感動が滑らかに流れるデジタル体験の設計と実装"},
	{"流動的アプリケーション", "ユーザーの動きに応じて滑らかに変化するモバイルアプリケーション"},
	{"本質的デザイン", "本質を見極め、不要なものを削ぎ落とした洗練されたデザイン"},
	{"流れの可視化", "データの流れを美しく可視化し、洞察を生み出す分析ソリューション"},
	{"信頼の流れ", "セキュリティを意識させない、自然で安全なデジタル体験の構築"},
	{"動的調和システム", "変化に適応し、常に最適な状態を保つ動的なシステム構築"},
}

var values = []service{
	{"本質と洗練", "余計なものを削ぎ落とし、本当に価値のあるものだけを残します"},
	{"動的な調和", "動きと静けさ、技術とデザインの調和を追求します"},
	{"大胆な探究", "まだ誰も見たことのない体験を、恐れずに形にします"},
}

// Home renders the single-page marketing site with the blog section.
func (v *Views) Home(posts []studiosite.BlogPost, categories []studiosite.BlogCategory, activeTag string) templ.Component {
	var b strings.Builder

	// Hero
	b.WriteString("<section id=\"top\" class=\"hero\"><canvas id=\"scene\" aria-hidden=\"true\"></canvas>")
	b.WriteString("<h1 class=\"hero-title\">" + esc(v.Config.Name) + "</h1>")
	b.WriteString("<p class=\"hero-copy\">" + esc(v.Config.Description) + "</p>")
	b.WriteString("<a class=\"hero-cta\" href=\"#philosophy\">Scroll</a></section>")

	// Philosophy
	b.WriteString("<section id=\"philosophy\" class=\"philosophy\"><h2 class=\"section-title\">理念</h2>")
	b.WriteString("<div class=\"values\">")
	for _, val := range values {
		b.WriteString("<article class=\"value\"><h3>" + esc(val.Title) + "</h3><p>" + esc(val.Description) + "</p></article>")
	}
	b.WriteString("</div></section>")

	// About
	b.WriteString("<section id=\"about\" class=\"about\"><h2 class=\"section-title\">私たちについて</h2>")
	b.WriteString("<div class=\"about-grid\"><div><h3>Mission</h3><p>流れるような体験で、人とデジタルの距離をなくす。</p></div>")
	b.WriteString("<div><h3>Vision</h3><p>誰もが意識せずに使える、美しく機能するプロダクトをつくる。</p></div></div></section>")

	// Services
	b.WriteString("<section id=\"services\" class=\"services\"><h2 class=\"section-title\">ソリューション</h2><div class=\"service-grid\">")
	for _, s := range services {
		b.WriteString("<article class=\"service\"><h3 class=\"service-title\">" + esc(s.Title) + "</h3><p>" + esc(s.Description) + "</p></article>")
	}
	b.WriteString("</div></section>")

	// Portfolio
	b.WriteString("<section id=\"portfolio\" class=\"portfolio\"><h2 class=\"section-title\">実績</h2>")
	b.WriteString("<div class=\"portfolio-grid\">")
	b.WriteString("<figure><img src=\"/public/work-flow.jpg\" alt=\"デジタルフロー設計の事例\" loading=\"lazy\"/><figcaption>体験設計</figcaption></figure>")
	b.WriteString("<figure><img src=\"/public/work-3d.jpg\" alt=\"3D Web体験の事例\" loading=\"lazy\"/><figcaption>3D Web</figcaption></figure>")
	b.WriteString("<figure><img src=\"/public/work-viz.jpg\" alt=\"データ可視化の事例\" loading=\"lazy\"/><figcaption>可視化</figcaption></figure>")
	b.WriteString("</div></section>")

	// Blog
	b.WriteString("<section id=\"blog\" class=\"blog\"><h2 class=\"section-title\">ブログ</h2>")
	v.tagFilter(&b, posts, activeTag)
	b.WriteString("<div class=\"post-grid\">")
	for _, p := range posts {
		v.postCard(&b, p, categories)
	}
	if len(posts) == 0 {
		b.WriteString("<p class=\"empty\">記事はまだありません。</p>")
	}
	b.WriteString("</div></section>")

	// Contact
	b.WriteString("<section id=\"contact\" class=\"contact\"><h2 class=\"section-title\">お問い合わせ</h2>")
	b.WriteString("<p>平日 9:00 - 18:00</p><p><a href=\"mailto:info@flium.co.jp\">info@flium.co.jp</a></p></section>")

	meta := studiosite.PageMeta{
		Title:       v.Config.Name,
		Description: v.Config.Description,
		URL:         studiosite.BuildURL(v.Config.URL),
		OGType:      "website",
	}
	return component(v.layout(meta, studiosite.WebsiteJsonLD(v.Config), b.String()))
}

// tagFilter renders the tag pills above the blog grid.
func (v *Views) tagFilter(b *strings.Builder, posts []studiosite.BlogPost, activeTag string) {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	if len(tags) == 0 && activeTag == "" {
		return
	}
	b.WriteString("<div class=\"tag-filter\"><a class=\"tag")
	if activeTag == "" {
		b.WriteString(" active")
	}
	b.WriteString("\" href=\"/#blog\">すべて</a>")
	for _, t := range tags {
		cls := "tag"
		if t == activeTag {
			cls = "tag active"
		}
		b.WriteString("<a class=\"" + cls + "\" href=\"/?tag=" + studiosite.PathEscape(t) + "#blog\">" + esc(t) + "</a>")
	}
	b.WriteString("</div>")
}

func (v *Views) postCard(b *strings.Builder, p studiosite.BlogPost, categories []studiosite.BlogCategory) {
	b.WriteString("<article class=\"post-card\">")
	if p.CoverImage != "" {
		b.WriteString("<img src=\"" + esc(p.CoverImage) + "\" alt=\"\" loading=\"lazy\"/>")
	}
	b.WriteString("<span class=\"category\" style=\"--category-color:" + esc(categoryColor(p.Category, categories)) + "\">" + esc(p.Category) + "</span>")
	b.WriteString("<h3><a href=\"/blog/" + studiosite.PathEscape(p.Slug) + "/\">" + esc(p.Title) + "</a></h3>")
	b.WriteString("<p>" + esc(p.Excerpt) + "</p>")
	b.WriteString("<div class=\"meta\"><time datetime=\"" + p.PublishedAt.Format("2006-01-02") + "\">" + formatDate(p.PublishedAt) + "</time><span>" + esc(p.Author) + "</span></div>")
	b.WriteString("</article>")
}

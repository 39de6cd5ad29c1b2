package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/flium/studiosite"
)

// AdminLogin renders the password form, with an error banner after a failed
// attempt.
func (v *Views) AdminLogin(showError bool, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"admin admin-login\"><h1>管理画面</h1>")
	if showError {
		b.WriteString("<p class=\"error\">パスワードが違います。</p>")
	}
	b.WriteString("<form method=\"post\" action=\"/admin/login/\">")
	b.WriteString(csrfField(csrfToken))
	b.WriteString("<input type=\"password\" name=\"password\" placeholder=\"Password\" autofocus required/>")
	b.WriteString("<button type=\"submit\">ログイン</button>")
	b.WriteString("</form></section>")
	meta := studiosite.PageMeta{Title: "管理画面 | " + v.Config.Name}
	return component(v.layout(meta, "", b.String()))
}

// AdminDashboard lists all posts and categories with edit/delete controls.
func (v *Views) AdminDashboard(posts []studiosite.BlogPost, categories []studiosite.BlogCategory, message string, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"admin\"><header class=\"admin-header\"><h1>ダッシュボード</h1>")
	b.WriteString("<form method=\"post\" action=\"/admin/logout/\">" + csrfField(csrfToken) + "<button type=\"submit\">ログアウト</button></form>")
	b.WriteString("</header>")
	if message != "" {
		b.WriteString("<p class=\"notice\">" + esc(message) + "</p>")
	}

	b.WriteString("<h2>記事</h2>")
	b.WriteString("<p><a class=\"button\" href=\"/admin/post/new/\">新規記事</a> <a class=\"button\" href=\"/admin/images/\">画像</a></p>")
	b.WriteString("<table class=\"admin-table\"><thead><tr><th>タイトル</th><th>カテゴリ</th><th>公開日</th><th>注目</th><th></th></tr></thead><tbody>")
	for _, p := range posts {
		b.WriteString("<tr><td><a href=\"/admin/post/" + studiosite.PathEscape(p.ID) + "/\">" + esc(p.Title) + "</a></td>")
		b.WriteString("<td>" + esc(p.Category) + "</td>")
		b.WriteString("<td>" + formatDate(p.PublishedAt) + "</td>")
		if p.Featured {
			b.WriteString("<td>★</td>")
		} else {
			b.WriteString("<td></td>")
		}
		b.WriteString("<td><button class=\"delete\" data-id=\"" + esc(p.ID) + "\" data-csrf=\"" + esc(csrfToken) + "\">削除</button></td></tr>")
	}
	b.WriteString("</tbody></table>")

	b.WriteString("<h2>カテゴリ</h2><ul class=\"category-list\">")
	for _, c := range categories {
		b.WriteString("<li><span class=\"swatch\" style=\"background:" + esc(c.Color) + "\"></span>" + esc(c.Name) + " <code>" + esc(c.Slug) + "</code></li>")
	}
	b.WriteString("</ul>")
	b.WriteString("<form class=\"category-form\" method=\"post\" action=\"/admin/category/\">")
	b.WriteString(csrfField(csrfToken))
	b.WriteString("<input name=\"name\" placeholder=\"名前\" required/>")
	b.WriteString("<input name=\"slug\" placeholder=\"slug\" required/>")
	b.WriteString("<input name=\"color\" placeholder=\"#00F5D4\" required/>")
	b.WriteString("<input name=\"description\" placeholder=\"説明\"/>")
	b.WriteString("<button type=\"submit\">カテゴリ追加</button>")
	b.WriteString("</form>")

	b.WriteString(adminDeleteScript)
	b.WriteString("</section>")
	meta := studiosite.PageMeta{Title: "ダッシュボード | " + v.Config.Name}
	return component(v.layout(meta, "", b.String()))
}

// AdminPostForm renders the create/edit form. A zero-value post means create.
func (v *Views) AdminPostForm(post studiosite.BlogPost, categories []studiosite.BlogCategory, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"admin\">")
	if post.ID == "" {
		b.WriteString("<h1>新規記事</h1>")
	} else {
		b.WriteString("<h1>記事を編集</h1>")
	}
	b.WriteString("<form method=\"post\" action=\"/admin/save/\" class=\"post-form\">")
	b.WriteString(csrfField(csrfToken))
	b.WriteString("<input type=\"hidden\" name=\"id\" value=\"" + esc(post.ID) + "\"/>")
	b.WriteString("<label>タイトル<input name=\"title\" value=\"" + esc(post.Title) + "\" required/></label>")
	b.WriteString("<label>抜粋<textarea name=\"excerpt\" rows=\"2\" required>" + esc(post.Excerpt) + "</textarea></label>")
	b.WriteString("<label>本文<textarea name=\"content\" rows=\"20\" required>" + esc(post.Content) + "</textarea></label>")
	b.WriteString("<label>カテゴリ<select name=\"category\">")
	for _, c := range categories {
		sel := ""
		if c.Name == post.Category {
			sel = " selected"
		}
		b.WriteString("<option value=\"" + esc(c.Name) + "\"" + sel + ">" + esc(c.Name) + "</option>")
	}
	b.WriteString("</select></label>")
	b.WriteString("<label>著者<input name=\"author\" value=\"" + esc(post.Author) + "\" required/></label>")
	b.WriteString("<label>タグ（カンマ区切り）<input name=\"tags\" value=\"" + esc(strings.Join(post.Tags, ", ")) + "\"/></label>")
	b.WriteString("<label>カバー画像URL<input name=\"coverImage\" value=\"" + esc(post.CoverImage) + "\"/></label>")
	checked := ""
	if post.Featured {
		checked = " checked"
	}
	b.WriteString("<label class=\"checkbox\"><input type=\"checkbox\" name=\"featured\"" + checked + "/>注目記事</label>")
	if post.Slug != "" {
		b.WriteString("<p class=\"hint\">slug: <code>" + esc(post.Slug) + "</code>（タイトル変更時に再生成されます）</p>")
	}
	b.WriteString("<button type=\"submit\">保存</button> <a href=\"/admin/\">戻る</a>")
	b.WriteString("</form></section>")
	meta := studiosite.PageMeta{Title: "記事を編集 | " + v.Config.Name}
	return component(v.layout(meta, "", b.String()))
}

// AdminImages lists uploaded cover images with an upload form.
func (v *Views) AdminImages(images []studiosite.Image, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"admin\"><h1>画像</h1>")
	b.WriteString("<form method=\"post\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\">")
	b.WriteString(csrfField(csrfToken))
	b.WriteString("<input type=\"file\" name=\"image\" accept=\"image/*\" required/>")
	b.WriteString("<button type=\"submit\">アップロード</button>")
	b.WriteString("</form>")
	b.WriteString("<div class=\"image-grid\">")
	for _, img := range images {
		src := "/public/uploads/" + studiosite.PathEscape(img.Filename)
		b.WriteString("<figure><img src=\"" + esc(src) + "\" alt=\"\" loading=\"lazy\"/>")
		b.WriteString("<figcaption><code>" + esc(src) + "</code></figcaption></figure>")
	}
	b.WriteString("</div>")
	b.WriteString("<p><a href=\"/admin/\">戻る</a></p></section>")
	meta := studiosite.PageMeta{Title: "画像 | " + v.Config.Name}
	return component(v.layout(meta, "", b.String()))
}

func csrfField(token string) string {
	return "<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(token) + "\"/>"
}

// adminDeleteScript wires the delete buttons to the DELETE admin endpoint.
const adminDeleteScript = `<script>
document.querySelectorAll("button.delete").forEach(function (btn) {
  btn.addEventListener("click", function () {
    if (!confirm("削除しますか？")) return;
    fetch("/admin/post/" + encodeURIComponent(btn.dataset.id) + "/", {
      method: "DELETE",
      headers: { "X-CSRF-Token": btn.dataset.csrf }
    }).then(function () { location.reload(); });
  });
});
</script>`

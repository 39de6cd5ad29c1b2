package views

import (
	"github.com/a-h/templ"

	"github.com/flium/studiosite"
)

// NotFound renders the styled 404 page.
func (v *Views) NotFound() templ.Component {
	body := "<section class=\"error-page\"><h1>404</h1><p>お探しのページは見つかりませんでした。</p><a href=\"/\">トップへ戻る</a></section>"
	meta := studiosite.PageMeta{Title: "404 | " + v.Config.Name}
	return component(v.layout(meta, "", body))
}

// ServerError renders the styled 500 page.
func (v *Views) ServerError() templ.Component {
	body := "<section class=\"error-page\"><h1>500</h1><p>サーバーエラーが発生しました。時間をおいて再度お試しください。</p><a href=\"/\">トップへ戻る</a></section>"
	meta := studiosite.PageMeta{Title: "500 | " + v.Config.Name}
	return component(v.layout(meta, "", body))
}

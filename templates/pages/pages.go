// Package pages renders the HTML screens. Components are plain templ
// components so handlers render them the same way as generated ones.
package pages

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"tierra-media/models"

	"github.com/a-h/templ"
)

const styles = `body{font-family:sans-serif;margin:2rem;background:#f4f1e8;color:#222}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{padding:.4rem .6rem;border:1px solid #ccc;font-size:11pt;text-align:left}
a.back{display:inline-block;margin-bottom:1rem}
ul.counts{list-style:none;padding:0}
.empty{font-style:italic}`

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<style>` + styles + `</style></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Index is the home screen: totals plus a link to every race and
// profession list.
func Index(summary *models.Summary) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Habitantes de la Tierra Media</h1>`)
		b.WriteString(`<p>Total: <strong>` + strconv.Itoa(summary.Total) + `</strong></p>`)

		b.WriteString(`<h2>Razas</h2><ul class="counts">`)
		for _, c := range summary.Races {
			writeCountLink(&b, "/razas?raza="+url.QueryEscape(c.Value), RaceLabel(c.Value), c.Count)
		}
		b.WriteString(`</ul>`)

		b.WriteString(`<h2>Profesiones</h2><ul class="counts">`)
		for _, c := range summary.Professions {
			writeCountLink(&b, "/profesiones?profesion="+url.QueryEscape(c.Value), ProfessionLabel(c.Value), c.Count)
		}
		b.WriteString(`</ul>`)

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout("Tierra Media", body)
}

func writeCountLink(b *strings.Builder, href, label string, count int) {
	b.WriteString(`<li><a href="` + templ.EscapeString(href) + `">` + templ.EscapeString(label) + `</a> (` + strconv.Itoa(count) + `)</li>`)
}

// InhabitantList shows one table row per inhabitant with name, surname,
// race and location. The back link returns to backURL.
func InhabitantList(label string, inhabitants []models.Inhabitant, backURL string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<a class="back" href="` + templ.EscapeString(backURL) + `">&larr; Volver</a>`)
		b.WriteString(`<h1>` + templ.EscapeString(label) + `</h1>`)

		if len(inhabitants) == 0 {
			b.WriteString(`<p class="empty">No hay habitantes.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>Nombre</th><th>Apellidos</th><th>Raza</th><th>Ubicación</th></tr></thead><tbody>`)
			for _, h := range inhabitants {
				b.WriteString(`<tr>`)
				for _, cell := range []string{h.Name, h.Surname, h.Race, h.Location} {
					b.WriteString(`<td>` + templ.EscapeString(cell) + `</td>`)
				}
				b.WriteString(`</tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout(label, body)
}

// Notice is a short message screen with a link back home.
func Notice(title, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<a class="back" href="/">&larr; Volver</a>`+
			`<h1>`+templ.EscapeString(title)+`</h1>`+
			`<p>`+templ.EscapeString(message)+`</p>`)
		return err
	})

	return layout(title, body)
}

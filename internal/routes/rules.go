package routes

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

const rulesHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body {
      margin: 0 auto;
      max-width: 720px;
      padding: 48px 20px;
      font-family: Georgia, "Times New Roman", serif;
      color: #132019;
      background: #f6f7f4;
      line-height: 1.6;
    }
    h1 { color: #1f6f4a; }
    li { margin-bottom: 8px; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <p>By using Spodaily you agree to the following rules.</p>
  <ol>
    {{ range .Rules }}<li>{{ . }}</li>
    {{ end }}
  </ol>
</body>
</html>`

var rulesOfUse = []string{
	"Your account is personal; do not share your credentials.",
	"Log only your own workouts and body measurements.",
	"The exercise catalogue is shared; suggest additions through the contact form.",
	"Data you delete is removed together with everything it contains, including the activities of a deleted session.",
	"Spodaily is a training log, not medical advice.",
}

// registerRulesPage renders the rules-of-use page once at startup and
// serves the cached bytes.
func registerRulesPage(app *fiber.App) error {
	tmpl, err := template.New("rules").Parse(rulesHTML)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Title string
		Rules []string
	}{
		Title: "Spodaily — Rules of Use",
		Rules: rulesOfUse,
	})
	if err != nil {
		return err
	}
	page := buf.Bytes()

	app.Get("/rules", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	})

	return nil
}

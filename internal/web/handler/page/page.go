// Package page renders the static markdown pages.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

// TemplateName is the name of the page template.
const TemplateName = "page"

//go:embed content/*.md
var content embed.FS

// Page is one markdown page and its route.
type Page struct {
	Name  string
	Title string
	Path  string
}

// Pages are served in this order.
var Pages = []Page{ //nolint:gochecknoglobals
	{Name: "about", Title: "About", Path: handler.RootPath},
	{Name: "resume", Title: "Resume", Path: "/resume"},
}

// Service is the page handler service.
type Service struct {
	handler.Service
	html map[string]template.HTML
}

// Handler is the page handler.
var Handler = Service{}

// Init converts every page once and registers its route.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	s.html = make(map[string]template.HTML, len(Pages))

	for _, p := range Pages {
		out, err := Convert(md, content, "content/"+p.Name+".md")
		if err != nil {
			return err
		}

		s.html[p.Name] = out

		router.Get(p.Path, s.show(p))
	}

	return nil
}

// Convert renders the markdown file name of fsys to HTML.
func Convert(md goldmark.Markdown, fsys fs.FS, name string) (template.HTML, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err = md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	// raw html in the sources is dropped by goldmark's default renderer
	return template.HTML(buf.String()), nil //nolint:gosec
}

func (s *Service) show(p Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return handler.Render(c, TemplateName, navigation.Public(p.Name, p.Title), fiber.Map{
			"Content": s.html[p.Name],
		})
	}
}

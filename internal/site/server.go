// Package site serves the portfolio over HTTP. Full pages and HTMX section
// fragments are rendered from the same view.Page so the two never drift.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Options struct {
	Catalog         *catalog.Catalog
	Backdrop        Backdrop
	DefaultMinLevel int
	// StaticDir is served under /static when set.
	StaticDir string
	// Salt keys the client address hash in access logs. A random salt is
	// generated when empty.
	Salt string
}

type Server struct {
	engine     *gin.Engine
	catalog    *catalog.Catalog
	backdrop   Backdrop
	defaultMin int
}

// pageData is what the page templates see: the rendered view plus chrome.
type pageData struct {
	view.Page
	Backdrop template.CSS
	// ContactError is set when a plain form post fails binding.
	ContactError *contactError
}

// New builds the gin engine. Templates are parsed here so a broken template
// fails startup rather than the first request.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("site: catalog is required")
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	salt := opts.Salt
	if salt == "" {
		if salt, err = newSalt(); err != nil {
			return nil, err
		}
	}

	s := &Server{
		catalog:    opts.Catalog,
		backdrop:   opts.Backdrop,
		defaultMin: view.ClampLevel(opts.DefaultMinLevel),
	}

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(salt))
	r.SetHTMLTemplate(tmpl)

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/", s.handleIndex)
	r.GET("/section/:name", s.handleSection)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) page(st view.State) pageData {
	return pageData{
		Page:     view.Render(s.catalog, st),
		Backdrop: s.backdrop.CSS(),
	}
}

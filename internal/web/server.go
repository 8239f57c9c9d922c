// ABOUTME: Gin HTTP server rendering the three pages from an immutable Site
// ABOUTME: Every GET path goes through present.Route; unknown paths show the articles page

package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"

	"github.com/harper/newsroom/internal/config"
	"github.com/harper/newsroom/internal/present"
)

//go:embed templates/*.html
var templateFS embed.FS

type navItem struct {
	Title  string
	Path   string
	Active bool
}

type pageView struct {
	Brand     string
	Nav       []navItem
	Page      string
	List      *ListPage
	WordCloud template.URL
}

// Server serves the site.
type Server struct {
	site   *Site
	engine *gin.Engine
}

// NewServer builds the gin engine for site.
func NewServer(site *Site) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.SetHTMLTemplate(tmpl)

	s := &Server{site: site, engine: engine}
	engine.GET("/*path", s.handlePage)
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Gracefully shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handlePage(c *gin.Context) {
	page := present.Route(c.Request.URL.Path)
	c.Set("page", page.String())

	view := pageView{
		Brand: config.SiteTitle,
		Nav:   navFor(page),
		Page:  page.String(),
	}

	switch page {
	case present.PagePress:
		list := s.site.Press()
		view.List = &list
	case present.PageWordCloud:
		view.WordCloud = template.URL(s.site.WordCloudURI())
	default:
		list := s.site.Articles()
		view.List = &list
	}

	c.HTML(http.StatusOK, "layout.html", view)
}

func navFor(active present.Page) []navItem {
	pages := present.Pages()
	items := make([]navItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, navItem{Title: p.NavTitle(), Path: p.Path(), Active: p == active})
	}
	return items
}

func parseTemplates() (*template.Template, error) {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	funcs := template.FuncMap{
		// Feed HTML is displayed as markup only after sanitizing
		"sanitize": func(s string) template.HTML {
			return template.HTML(policy.Sanitize(s))
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"page":     c.GetString("page"),
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Info("Request")
	}
}

// Package server is the portfolio's HTTP surface.
package server

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/cyberfolio/internal/config"
	"github.com/Zachkp/cyberfolio/internal/content"
	"github.com/Zachkp/cyberfolio/internal/store"
	"github.com/Zachkp/cyberfolio/internal/web"
)

// Server serves the portfolio page, the live session and the admin area.
type Server struct {
	cfg       *config.Config
	db        *store.DB
	portfolio *content.Portfolio
	router    *gin.Engine
	admin     *admin

	// newRand seeds the particle generator for each page view.
	newRand func() *rand.Rand
	// trackAsync records page views off the request goroutine.
	trackAsync bool

	httpServer *http.Server
}

// New builds the server and its routes.
func New(cfg *config.Config, db *store.DB, portfolio *content.Portfolio) (*Server, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		db:        db,
		portfolio: portfolio,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		trackAsync: true,
	}
	s.admin = newAdmin(cfg.Admin, db)

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))
	r.Static("/images", cfg.ImagesDir)
	r.Use(visitorCookieMiddleware())
	r.Use(s.visitorTrackingMiddleware())

	s.setupPageRoutes(r)
	s.admin.setupRoutes(r)
	s.router = r
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully. Old page
// views are purged at startup and daily.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	go s.cleanupLoop(ctx)

	errc := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on :%s", s.cfg.Port)
		errc <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) cleanupLoop(ctx context.Context) {
	cleanup := func() {
		if _, err := s.db.CleanupVisitors(time.Now().Add(-s.cfg.VisitorRetention)); err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		}
	}
	cleanup()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}

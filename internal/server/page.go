package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/cyberfolio/internal/content"
	"github.com/Zachkp/cyberfolio/internal/live"
	"github.com/Zachkp/cyberfolio/internal/mobilenav"
	"github.com/Zachkp/cyberfolio/internal/nameanim"
	"github.com/Zachkp/cyberfolio/internal/particles"
	"github.com/Zachkp/cyberfolio/internal/section"
	"github.com/Zachkp/cyberfolio/internal/theme"
	"github.com/Zachkp/cyberfolio/internal/typer"
)

const (
	visitorCookie  = "visitor_id"
	visitorKey     = "visitor"
	visitorMaxAge  = 3600 * 24 * 365
	hintColor      = "Sec-CH-Prefers-Color-Scheme"
	hintMotion     = "Sec-CH-Prefers-Reduced-Motion"
	requestedHints = hintColor + ", " + hintMotion
)

// visitorCookieMiddleware gives every browser a random, stable ID that
// scopes its theme preference.
func visitorCookieMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, visitorMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func (s *Server) setupPageRoutes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.POST("/theme/toggle", s.handleThemeToggle)
	r.GET("/live", gin.WrapH(live.NewHandler(s.liveOptions, s.cfg.Live.QueueSize)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/privacy", func(c *gin.Context) {
		t, source := s.resolveTheme(c)
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":  "Privacy Policy",
			"theme":  t,
			"source": source,
		})
	})
}

// preferences returns the theme store for the requesting visitor.
func (s *Server) preferences(c *gin.Context) theme.Store {
	return s.db.ForVisitor(c.GetString(visitorKey))
}

// resolveTheme also reports whether the theme was decided by a stored
// preference, the color-scheme hint, or neither. With neither, the page's
// head script applies the OS scheme before first paint.
func (s *Server) resolveTheme(c *gin.Context) (theme.Theme, theme.Source) {
	return theme.LoadSource(s.preferences(c), theme.SignalFromHint(c.GetHeader(hintColor)), nil)
}

type pageData struct {
	Theme         theme.Theme
	ThemeSource   theme.Source
	Name          string
	Active        string
	Links         []mobilenav.Link
	Particles     []particles.Particle
	Grid          particles.Grid
	ReducedMotion bool
	Portfolio     *content.Portfolio
}

func (s *Server) handleIndex(c *gin.Context) {
	// Ask for the color-scheme hint up front so the first paint already has
	// the right data-theme.
	c.Header("Accept-CH", requestedHints)
	c.Header("Critical-CH", hintColor)
	c.Header("Vary", requestedHints+", Cookie")

	reduced := strings.Trim(c.GetHeader(hintMotion), `" `) == "reduce"
	t, source := s.resolveTheme(c)
	c.HTML(http.StatusOK, "index.html", pageData{
		Theme:         t,
		ThemeSource:   source,
		Name:          s.nameConfig().ForeignText(),
		Active:        section.Hero,
		Links:         mobilenav.Links,
		Particles:     particles.Generate(s.newRand(), reduced),
		Grid:          particles.NewGrid(reduced),
		ReducedMotion: reduced,
		Portfolio:     s.portfolio,
	})
}

// handleThemeToggle is the no-JavaScript path for switching themes.
func (s *Server) handleThemeToggle(c *gin.Context) {
	prefs := s.preferences(c)
	current, _ := s.resolveTheme(c)
	next := current.Toggle()
	if err := prefs.Set(theme.Key, string(next)); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"theme": next})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) nameConfig() nameanim.Config {
	return nameanim.Config{
		ForeignParts: s.portfolio.Name.Foreign,
		FinalName:    s.portfolio.Name.Final,
		Hold:         s.cfg.Name.Hold,
		Step:         s.cfg.Name.Step,
	}
}

func (s *Server) rolesConfig() typer.Config {
	return typer.Config{
		Roles:  s.portfolio.Roles,
		Stroke: s.cfg.Roles.Stroke,
		Pause:  s.cfg.Roles.Pause,
	}
}

// liveOptions builds a session for a websocket request. The page passes the
// browser's color scheme as ?scheme= and reduced motion as ?motion=reduce;
// visitors without a cookie get no persistence.
func (s *Server) liveOptions(r *http.Request) live.Options {
	signal := theme.SignalFromHint(r.URL.Query().Get("scheme"))
	if signal == theme.SignalUnknown {
		signal = theme.SignalFromHint(r.Header.Get(hintColor))
	}

	reduced := r.URL.Query().Get("motion") == "reduce" ||
		strings.Trim(r.Header.Get(hintMotion), `" `) == "reduce"

	opts := live.Options{
		Name:            s.nameConfig(),
		Roles:           s.rolesConfig(),
		ReducedMotion:   reduced,
		PointerThrottle: s.cfg.Live.PointerThrottle,
		ScrollThrottle:  s.cfg.Live.ScrollThrottle,
		OS:              signal,
	}
	if ck, err := r.Cookie(visitorCookie); err == nil && uuid.Validate(ck.Value) == nil {
		opts.Store = s.db.ForVisitor(ck.Value)
	}
	return opts
}

// admin.go - privacy-conscious admin area and visitor tracking
package server

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/cyberfolio/internal/config"
	"github.com/Zachkp/cyberfolio/internal/store"
)

const adminCookie = "admin_token"

type admin struct {
	creds config.Admin
	db    *store.DB
	token string
	// salt keeps IP hashes from being reversed by brute force.
	salt string
}

func newAdmin(creds config.Admin, db *store.DB) *admin {
	a := &admin{
		creds: creds,
		db:    db,
		token: generateToken(),
		salt:  generateToken(),
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP is consistent per IP for the life of the process.
func (a *admin) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// credentials falls back to development defaults only in debug mode.
func (a *admin) credentials() (string, string, bool) {
	username, password := a.creds.Username, a.creds.Password
	if gin.Mode() == gin.DebugMode {
		if username == "" {
			username = "admin"
			log.Println("WARNING: Using default admin username. Set CYBERFOLIO_ADMIN__USERNAME.")
		}
		if password == "" {
			password = "admin123"
			log.Println("WARNING: Using default admin password. Set CYBERFOLIO_ADMIN__PASSWORD.")
		}
	}
	return username, password, username != "" && password != ""
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/live", "/healthz", "/theme/"}

func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := s.admin.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		record := func() {
			if err := s.db.RecordVisit(hashed, userAgent, path, time.Now()); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}
		if s.trackAsync {
			go record()
		} else {
			record()
		}
		c.Next()
	}
}

func (a *admin) setupRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		wantUser, wantPass, ok := a.credentials()
		if ok &&
			subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1 {
			c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.db.Stats(time.Now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.db.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.db.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}

package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aashiqfarid/portfolio/internal/visitors"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
	visitorsLimit  = 200
)

// admin serves the visitor dashboard behind a single session token that is
// regenerated on every start.
type admin struct {
	store     *visitors.Store
	logger    *zap.Logger
	username  string
	password  []byte // bcrypt hash
	token     string
	retention time.Duration
}

func newAdmin(store *visitors.Store, logger *zap.Logger, username, password string, retention time.Duration) (*admin, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &admin{
		store:     store,
		logger:    logger,
		username:  username,
		password:  hash,
		token:     token,
		retention: retention,
	}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *admin) register(r *gin.Engine) {
	r.GET("/admin/login", a.loginPage)
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", a.logout)

	g := r.Group("/admin")
	g.Use(a.requireSession())
	g.GET("/dashboard", a.dashboard)
	g.GET("/api/stats", a.statsJSON)
	g.GET("/visitors", a.listVisitors)
	g.GET("/export/stats", a.export)
	g.POST("/privacy/cleanup", a.cleanup)
}

func (a *admin) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{})
}

func (a *admin) login(c *gin.Context) {
	userOK := equal(c.PostForm("username"), a.username)
	passOK := bcrypt.CompareHashAndPassword(a.password, []byte(c.PostForm("password"))) == nil
	client := a.store.HashIP(c.ClientIP())

	if !userOK || !passOK {
		a.logger.Warn("Failed admin login attempt", zap.String("client", client))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, adminCookieAge, "/admin", "", c.Request.TLS != nil, true)
	a.logger.Info("Admin login successful", zap.String("client", client))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *admin) logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *admin) dashboard(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		a.logger.Error("Error loading admin stats", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
}

func (a *admin) statsJSON(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		a.logger.Error("Error loading admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) listVisitors(c *gin.Context) {
	visits, err := a.store.Recent(c.Request.Context(), visitorsLimit)
	if err != nil {
		a.logger.Error("Error loading visitors", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visits})
}

func (a *admin) export(c *gin.Context) {
	stats, err := a.store.Stats(c.Request.Context())
	if err != nil {
		a.logger.Error("Error exporting admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	name := "portfolio-stats-" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", "attachment; filename="+name)
	a.logger.Info("Admin stats exported", zap.String("client", a.store.HashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

func (a *admin) cleanup(c *gin.Context) {
	n, err := a.store.Cleanup(c.Request.Context(), a.retention)
	if err != nil {
		a.logger.Error("Error cleaning up visitor data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	a.logger.Info("Privacy cleanup run from admin", zap.Int64("rows", n))
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

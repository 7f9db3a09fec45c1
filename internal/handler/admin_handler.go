package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/view"
)

const (
	sessionUserKey     = "user_id"
	sessionUsernameKey = "username"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	if !a.authEnabled || a.loggedIn(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{"title": "Admin Login"})
}

// Login 校验管理员账号并写入会话
func (a *API) Login(c *gin.Context) {
	if !a.authEnabled {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := db.Authenticate(a.db, username, password)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid username or password"
		if !errors.Is(err, db.ErrInvalidCredentials) {
			a.log.WithError(err).Error("admin login lookup failed")
			status = http.StatusInternalServerError
			message = "Login failed, please try again"
		}
		a.renderHTML(c, status, "login.html", gin.H{"title": "Admin Login", "error": message})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		a.log.WithError(err).Error("failed to save admin session")
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{"title": "Admin Login", "error": "Could not start session"})
		return
	}

	a.log.WithField("username", user.Username).Info("admin logged in")
	c.Redirect(http.StatusFound, "/admin")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowAdmin 渲染后台内容管理面板
func (a *API) ShowAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	tab := strings.TrimSpace(c.DefaultQuery("tab", "landing"))
	switch tab {
	case "landing", "buttons", "results":
	default:
		tab = "landing"
	}

	page := 1
	if parsed, ok := parsePage(c.DefaultQuery("page", "1")); ok && view.ValidPage(parsed) {
		page = parsed
	}

	results, err := a.results.ListByPage(ctx, page)
	if err != nil {
		results = []content.WebResult{}
	}

	var username interface{}
	if a.authEnabled {
		username = sessions.Default(c).Get(sessionUsernameKey)
	}

	a.renderHTML(c, http.StatusOK, "admin.html", gin.H{
		"title":    "Admin Panel",
		"tab":      tab,
		"username": username,
		"landing":  a.landing.Get(ctx),
		"buttons":  view.BuildLanding(content.LandingContent{}, a.buttons.List(ctx)).Buttons,
		"page":     page,
		"pages":    []int{1, 2, 3, 4, 5},
		"results":  results,
	})
}

// AuthRequired 是一个简单的认证中间件；未配置管理员账号时直接放行。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authEnabled {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				respondError(c, http.StatusUnauthorized, "login required")
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

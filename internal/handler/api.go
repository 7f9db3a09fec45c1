package handler

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SiteName is shown in page headers and titles.
const SiteName = "MingleMoody"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	store       *content.Store
	landing     *service.LandingService
	buttons     *service.ButtonService
	results     *service.ResultService
	log         logrus.FieldLogger
	authEnabled bool
}

// NewAPI constructs a handler set with shared services. gdb holds the admin
// users; store holds the site content. When authEnabled is false the admin
// panel is open.
func NewAPI(gdb *gorm.DB, store *content.Store, log logrus.FieldLogger, authEnabled bool) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{
		db:          gdb,
		store:       store,
		landing:     service.NewLandingService(store),
		buttons:     service.NewButtonService(store),
		results:     service.NewResultService(store),
		log:         log,
		authEnabled: authEnabled,
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = SiteName
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	if _, exists := payload["authEnabled"]; !exists {
		payload["authEnabled"] = a.authEnabled
	}
	if _, exists := payload["loggedIn"]; !exists {
		payload["loggedIn"] = a.loggedIn(c)
	}

	c.HTML(status, template, payload)
}

func (a *API) loggedIn(c *gin.Context) bool {
	if !a.authEnabled {
		return false
	}
	if _, exists := c.Get(sessions.DefaultKey); !exists {
		return false
	}
	return sessions.Default(c).Get(sessionUserKey) != nil
}

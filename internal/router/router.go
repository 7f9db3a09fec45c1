package router

import (
	"html/template"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/handler"
	"github.com/minglemoody/web"
	"github.com/sirupsen/logrus"
)

// Options 控制路由层的可调参数。
type Options struct {
	SessionSecret      string
	LoginRatePerMinute int
	Logger             logrus.FieldLogger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(handler.RequestLogger(opts.Logger))
	}

	// 配置会话中间件
	secret := opts.SessionSecret
	if secret == "" {
		secret = "minglemoody-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 86400 * 7})
	r.Use(sessions.Sessions("minglemoody_session", store))

	// 加载内嵌模板并添加自定义函数
	tmpl := template.Must(template.New("").Funcs(funcMap()).ParseFS(web.Templates, "template/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", api.HealthCheck)

	// 公开页面
	r.GET("/", api.ShowLanding)
	r.GET("/webresult", api.ShowResultPage)
	for p := content.MinPage; p <= content.MaxPage; p++ {
		r.GET(legacyResultPath(p), api.ResultPageHandler(p))
	}

	public := r.Group("/api")
	{
		public.GET("/landing", api.GetPublicLanding)
		public.GET("/buttons", api.GetPublicButtons)
		public.GET("/results", api.GetPublicResults)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", handler.RateLimit(opts.LoginRatePerMinute), api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("", api.ShowAdmin)

			// API路由
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/landing", api.GetLanding)
				adminAPI.PUT("/landing", api.UpdateLanding)
				adminAPI.DELETE("/landing", api.ResetLanding)

				adminAPI.GET("/buttons", api.GetButtons)
				adminAPI.POST("/buttons", api.CreateButton)
				adminAPI.DELETE("/buttons", api.ResetButtons)
				adminAPI.DELETE("/buttons/:id", api.DeleteButton)

				adminAPI.GET("/results", api.GetResults)
				adminAPI.POST("/results", api.CreateResult)
				adminAPI.DELETE("/results", api.ResetResults)
				adminAPI.PUT("/results/:id", api.UpdateResult)
				adminAPI.DELETE("/results/:id", api.DeleteResult)
			}
		}
	}

	r.NoRoute(api.NotFound)

	return r
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	}
}

// legacyResultPath 返回 /webresult1 这类固定路径；第 1 页同样保留。
func legacyResultPath(p int) string {
	return "/webresult" + strconv.Itoa(p)
}

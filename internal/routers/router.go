package routers

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/middleware"
	"github.com/hellodata/notes-web/internal/routers/web_router"
	"github.com/hellodata/notes-web/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/newsletter",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/search",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

func NewRouter(templateFiles embed.FS, staticFiles embed.FS, appContainer *app.App, uni *ut.UniversalTranslator) (*gin.Engine, error) {

	// 获取配置
	cfg := appContainer.Config()

	funcMap := template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// 创建 Handlers（注入 App Container）
	baseHandler := web_router.NewHandler(appContainer)
	homeHandler := web_router.NewHomeHandler(appContainer)
	folderHandler := web_router.NewFolderHandler(appContainer)
	noteHandler := web_router.NewNoteHandler(appContainer)
	searchHandler := web_router.NewSearchHandler(appContainer)
	aboutHandler := web_router.NewAboutHandler(appContainer)
	newsletterHandler := web_router.NewNewsletterHandler(appContainer)
	feedHandler := web_router.NewFeedHandler(appContainer)

	site := baseHandler.Site()

	staticAssets, _ := fs.Sub(staticFiles, "static")
	cacheMiddleware := func(c *gin.Context) {
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", cfg.App.StaticCacheMaxAge))
		c.Next()
	}
	r.Group("/static", cacheMiddleware).StaticFS("/", http.FS(staticAssets))

	r.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version()))
	r.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
	r.Use(middleware.RateLimiter(methodLimiters, site))
	r.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
	r.Use(middleware.LangWithTranslator(uni))
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger(), site))

	r.GET("/", homeHandler.Home)
	r.GET("/search", searchHandler.Search)
	r.GET("/about", aboutHandler.About)
	r.GET("/newsletter", newsletterHandler.Show)
	r.POST("/newsletter", newsletterHandler.Subscribe)

	r.GET("/sitemap.xml", feedHandler.Sitemap)
	r.GET("/rss.xml", feedHandler.RSS)

	// 旧版 ID 链接 301 重定向到 slug 链接
	r.GET("/folders/:id", folderHandler.Redirect)
	r.GET("/notes/:id", noteHandler.Redirect)

	r.GET("/:folderSlug", folderHandler.Show)
	r.GET("/:folderSlug/:noteSlug", noteHandler.Show)

	r.NoRoute(baseHandler.NotFound)

	return r, nil
}

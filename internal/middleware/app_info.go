package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/pkg/app"
)

// AppInfo 注入应用名称、版本与访问 Host（支持依赖注入）
func AppInfoWithConfig(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}

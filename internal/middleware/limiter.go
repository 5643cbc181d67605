package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/pkg/limiter"
)

// RateLimiter creates rate limiting middleware (supports dependency injection)
// RateLimiter 创建限流中间件（支持依赖注入），超限时渲染 429 错误页
func RateLimiter(l limiter.Face, site dto.SiteView) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				c.Abort()
				c.HTML(http.StatusTooManyRequests, "error.tmpl", dto.ErrorPage{
					Meta:    dto.Meta{PageTitle: "Too Many Requests"},
					Site:    site,
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests. Please slow down and try again.",
				})
				return
			}
		}

		c.Next()
	}
}

package app

import (
	"github.com/gin-gonic/gin"
)

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// GetAccessHost 获取带协议的访问主机名
func GetAccessHost(c *gin.Context) string {
	accessProto := ""
	if proto := c.Request.Header.Get("X-Forwarded-Proto"); proto == "" {
		accessProto = "http://"
	} else {
		accessProto = proto + "://"
	}
	return accessProto + c.Request.Host
}

// GetRequestURL 获取当前请求的完整 URL
func GetRequestURL(c *gin.Context) string {
	return GetAccessHost(c) + c.Request.RequestURI
}

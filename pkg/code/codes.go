package code

import "net/http"

// 站点使用的全部状态码
// All status codes used by the site
var (
	Success = NewSuss(0, lang{en: "Success", zh_cn: "成功"})

	ErrorInvalidParams = NewError(10001, http.StatusBadRequest, lang{
		en:    "Invalid request parameters",
		zh_cn: "请求参数错误",
	})
	ErrorNotFound = NewError(10002, http.StatusNotFound, lang{
		en:    "Page not found",
		zh_cn: "页面不存在",
	})
	ErrorFolderNotFound = NewError(10003, http.StatusNotFound, lang{
		en:    "Folder not found",
		zh_cn: "文件夹不存在",
	})
	ErrorNoteNotFound = NewError(10004, http.StatusNotFound, lang{
		en:    "Note not found",
		zh_cn: "笔记不存在",
	})
	ErrorUpstream = NewError(10005, http.StatusBadGateway, lang{
		en:    "Content store is unavailable",
		zh_cn: "内容存储服务不可用",
	})
	ErrorTooManyRequests = NewError(10006, http.StatusTooManyRequests, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	})
	ErrorServer = NewError(10007, http.StatusInternalServerError, lang{
		en:    "Server error",
		zh_cn: "服务器错误",
	})

	ErrorSubscribeInvalid = NewError(10101, http.StatusBadRequest, lang{
		en:    "Invalid subscription data",
		zh_cn: "订阅数据无效",
	})
	ErrorSubscribeDuplicate = NewError(10102, http.StatusConflict, lang{
		en:    "This email is already subscribed to our newsletter",
		zh_cn: "该邮箱已订阅本站通讯",
	})
	ErrorMailSend = NewError(10103, http.StatusInternalServerError, lang{
		en:    "Failed to send email",
		zh_cn: "邮件发送失败",
	})
)

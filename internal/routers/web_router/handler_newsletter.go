package web_router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
	pkgapp "github.com/hellodata/notes-web/pkg/app"
)

// NewsletterHandler 通讯订阅页处理器
type NewsletterHandler struct {
	*Handler
}

// NewNewsletterHandler 创建订阅处理器实例
func NewNewsletterHandler(a *app.App) *NewsletterHandler {
	return &NewsletterHandler{Handler: NewHandler(a)}
}

func (h *NewsletterHandler) meta() dto.Meta {
	return dto.Meta{
		PageTitle:       "Newsletter Subscription",
		CanonicalURL:    h.App.Config().Site.URL + "/newsletter",
		MetaDescription: "Subscribe to our newsletter to receive updates about web development notes and articles",
		SidebarSpace:    true,
	}
}

// Show 订阅表单页
func (h *NewsletterHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "newsletter.tmpl", dto.NewsletterPage{
		Meta: h.meta(),
		Site: h.Site(),
	})
}

// Subscribe 处理订阅提交
// 验证失败与重复邮箱在本页给出提示，输入不落库
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	form := &dto.SubscribeRequest{}
	valid, errs := pkgapp.BindAndValid(c, form)
	if !valid {
		c.HTML(http.StatusBadRequest, "newsletter.tmpl", dto.NewsletterPage{
			Meta:  h.meta(),
			Site:  h.Site(),
			Error: strings.Join(errs.Errors(), "; "),
			Form:  form,
		})
		return
	}

	if err := h.App.SubscriberService.Subscribe(c.Request.Context(), form); err != nil {
		message := "Failed to subscribe. Please try again later."
		switch errors.CodeOf(err) {
		case code.ErrorSubscribeDuplicate:
			message = "This email is already subscribed to our newsletter."
		case code.ErrorSubscribeInvalid:
			message = "Invalid data provided. Please check your input."
		}
		c.HTML(errors.StatusOf(err), "newsletter.tmpl", dto.NewsletterPage{
			Meta:  h.meta(),
			Site:  h.Site(),
			Error: message,
			Form:  form,
		})
		return
	}

	c.HTML(http.StatusOK, "newsletter.tmpl", dto.NewsletterPage{
		Meta:    h.meta(),
		Site:    h.Site(),
		Success: true,
	})
}

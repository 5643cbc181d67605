package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
)

// ValidError 单个字段的验证错误
type ValidError struct {
	Key     string
	Message string
}

func (v *ValidError) Error() string {
	return v.Message
}

// ValidErrors 验证错误集合
type ValidErrors []*ValidError

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

// Errors 返回全部错误消息
func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// BindAndValid 绑定请求参数并验证，错误消息使用请求语言翻译
func BindAndValid(c *gin.Context, obj any) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(obj)
	if err == nil {
		return true, nil
	}

	validationErrors, ok := err.(validatorV10.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{
			Key:     "body",
			Message: "Invalid request format",
		})
		return false, errs
	}

	var trans ut.Translator
	if v, exists := c.Get("trans"); exists {
		trans, _ = v.(ut.Translator)
	}

	for _, validationErr := range validationErrors {
		message := validationErr.Error()
		if trans != nil {
			message = validationErr.Translate(trans)
		}
		errs = append(errs, &ValidError{
			Key:     validationErr.Field(),
			Message: message,
		})
	}
	return false, errs
}

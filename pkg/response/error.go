package response

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type BizError struct {
	Code int
	Msg  string
	Opts []Option
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string, opts ...Option) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
		Opts: opts,
	}
}

// Render 把 BizError 写成信封
func (e *BizError) Render(c *gin.Context) {
	Fail(c, e.Code, e.Msg, e.Opts...)
}

// Invalid 参数绑定/校验失败，返回 400 和逐字段的校验信息
func Invalid(err error) *BizError {
	return NewError(http.StatusBadRequest, MsgInvalid,
		WithError(MsgBadRequest),
		WithValidationErrors(ValidationMessages(err)),
	)
}

// ValidationMessages 将 validator 的错误展开为 字段 -> 提示
func ValidationMessages(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["body"] = err.Error()
		return out
	}
	for _, fe := range ve {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is mandatory"
		case "uuid", "uuid4":
			out[field] = field + " should be an UUID"
		case "numeric":
			out[field] = field + " should be a number"
		case "oneof":
			out[field] = field + " can only take " + fe.Param()
		case "datetime":
			out[field] = field + " should be a date (" + fe.Param() + ")"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// UseFieldTags 让校验错误使用 json/form/uri 标签名而不是 Go 字段名
func UseFieldTags() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgBadRequest = "bad request"
	MsgInternal   = "internal server error"
	MsgInvalid    = "request validation failed"
)

// Response 统一响应信封，可选字段按需出现
type Response struct {
	StatusCode       int               `json:"statusCode"`
	Message          string            `json:"message"`
	Data             any               `json:"data,omitempty"`
	Error            any               `json:"error,omitempty"`
	Count            *int              `json:"count,omitempty"`
	Token            *string           `json:"token,omitempty"`
	PrivateKey       string            `json:"privateKey,omitempty"`
	Code             any               `json:"code,omitempty"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

type Option func(*Response)

func WithData(data any) Option {
	return func(r *Response) { r.Data = data }
}

func WithError(err any) Option {
	return func(r *Response) { r.Error = err }
}

func WithCount(n int) Option {
	return func(r *Response) { r.Count = &n }
}

func WithToken(token string) Option {
	return func(r *Response) { r.Token = &token }
}

func WithPrivateKey(key string) Option {
	return func(r *Response) { r.PrivateKey = key }
}

func WithCode(code any) Option {
	return func(r *Response) { r.Code = code }
}

func WithValidationErrors(v map[string]string) Option {
	return func(r *Response) { r.ValidationErrors = v }
}

func New(status int, msg string, opts ...Option) Response {
	r := Response{StatusCode: status, Message: msg}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Success 200 响应
func Success(c *gin.Context, msg string, opts ...Option) {
	c.JSON(http.StatusOK, New(http.StatusOK, msg, opts...))
}

// Fail 以 status 作为 HTTP 状态码和信封 statusCode
func Fail(c *gin.Context, status int, msg string, opts ...Option) {
	c.JSON(status, New(status, msg, opts...))
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, New(httpStatus, msg))
}

package httperr

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"hotel-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the public error body and keeps err on the context for
// the logging middleware. A nil err is recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortTooManyRequests answers 429 with a Retry-After header in whole seconds.
func AbortTooManyRequests(c *gin.Context, retryAfter time.Duration, err error, msg string, detail any) {
	c.Header("Retry-After", RetryAfterSeconds(retryAfter))
	AbortWithError(c, http.StatusTooManyRequests, err, msg, detail)
}

func RetryAfterSeconds(d time.Duration) string {
	secs := int64(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}

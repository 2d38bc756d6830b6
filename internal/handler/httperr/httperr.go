package httperr

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Status maps the kind an error was marked with to an HTTP status.
func Status(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the status of err's kind. Internal errors never leak
// their message to the client.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	msg := internalMessage
	if status != http.StatusInternalServerError {
		msg = Message(err)
	}
	AbortWithError(c, status, err, msg, nil)
}

// Message renders err for a client: the text with its first letter upper cased.
func Message(err error) string {
	s := strings.TrimSpace(err.Error())
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

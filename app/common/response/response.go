package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"KissaHub/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

// Result is the body every mutation and query endpoint answers with.
// Validation failures travel in StatusCode/StatusMsg and never as transport errors.
type Result struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

type ResultWithData struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Data       any    `json:"data,omitempty"`
}

func NewResult(statusCode int, statusMsg string) Result {
	if statusMsg == "" {
		statusMsg = errno.Message(statusCode)
	}
	return Result{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

func OK() Result {
	return NewResult(errno.StatusOK, "")
}

func Fail(statusCode int) Result {
	return NewResult(statusCode, "")
}

func (r Result) Success() bool {
	return r.StatusCode == errno.StatusOK
}

func NewResultWithData(statusCode int, statusMsg string, data any) ResultWithData {
	if statusMsg == "" {
		statusMsg = errno.Message(statusCode)
	}
	return ResultWithData{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
		Data:       data,
	}
}

// ErrorHandler renders coded errors raised at the HTTP edge as a Result body.
func ErrorHandler(_ context.Context, err error) (int, any) {
	var codeErr *errors.CodeMsg
	if stderrors.As(err, &codeErr) {
		status := http.StatusBadRequest
		if codeErr.Code == errno.IdentityMissing || codeErr.Code == errno.IdentityInvalid {
			status = http.StatusUnauthorized
		}
		return status, NewResult(codeErr.Code, codeErr.Msg)
	}
	return http.StatusBadRequest, NewResult(errno.InvalidParam, err.Error())
}

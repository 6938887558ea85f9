package middleware

import (
	"net/http"

	"KissaHub/app/common/util"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// IdentityMiddleware trusts the caller id the gateway put in the request
// header and moves it into the request context.
type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

func (m *IdentityMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId, err := util.UserIdFromHeader(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		util.InjectUserId2Ctx(r, userId)
		next(w, r)
	}
}

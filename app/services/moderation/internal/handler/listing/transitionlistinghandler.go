// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package listing

import (
	"net/http"

	"KissaHub/app/services/moderation/internal/logic"
	"KissaHub/app/services/moderation/internal/svc"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func TransitionListingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TransitionListingRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewTransitionListingLogic(r.Context(), svcCtx)
		resp, err := l.TransitionListing(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

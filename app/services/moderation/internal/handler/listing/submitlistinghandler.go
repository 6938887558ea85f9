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

func SubmitListingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitListingRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewSubmitListingLogic(r.Context(), svcCtx)
		resp, err := l.SubmitListing(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

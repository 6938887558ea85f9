// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shop

import (
	"net/http"

	"KissaHub/app/services/catalog/internal/logic"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListReviewsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListReviewsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewListReviewsLogic(r.Context(), svcCtx)
		resp, err := l.ListReviews(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

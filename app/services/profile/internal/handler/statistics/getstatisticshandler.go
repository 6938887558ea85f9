// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package statistics

import (
	"net/http"

	"KissaHub/app/services/profile/internal/logic"
	"KissaHub/app/services/profile/internal/svc"
	"KissaHub/app/services/profile/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetStatisticsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetStatisticsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGetStatisticsLogic(r.Context(), svcCtx)
		resp, err := l.GetStatistics(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

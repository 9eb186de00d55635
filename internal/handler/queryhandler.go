package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"frank-api/internal/logic"
	"frank-api/internal/svc"
	"frank-api/internal/types"
)

func QueryHandler(serverCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.QueryReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewQueryLogic(r.Context(), serverCtx)
		resp := l.Query(&req)
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"frank-api/internal/logic"
	"frank-api/internal/svc"
)

func HealthHandler(serverCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHealthLogic(r.Context(), serverCtx)
		httpx.OkJsonCtx(r.Context(), w, l.Health())
	}
}

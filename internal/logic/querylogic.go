package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"frank-api/internal/svc"
	"frank-api/internal/types"
)

type QueryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *QueryLogic {
	return &QueryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Query forwards the prompt to the assistant. An unexpected failure anywhere
// in the dispatch path becomes an in-band error field, never a 5xx.
func (l *QueryLogic) Query(req *types.QueryReq) (resp *types.QueryResp) {
	defer func() {
		if r := recover(); r != nil {
			l.Errorf("query panicked: %v", r)
			resp = &types.QueryResp{Error: fmt.Sprintf("%v", r)}
		}
	}()

	reply := l.svcCtx.Assistant.HandlePrompt(l.ctx, req.Prompt)
	return &types.QueryResp{Response: reply}
}

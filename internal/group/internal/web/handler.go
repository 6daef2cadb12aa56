package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/reviewme/reviewme/internal/group/internal/domain"
	"github.com/reviewme/reviewme/internal/group/internal/service"
)

type Handler struct {
	svc    service.ReviewGroupService
	logger *elog.Component
}

func NewHandler(svc service.ReviewGroupService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/group/create", ginx.B[CreateReq](h.Create))
	server.POST("/group/check", ginx.B[CheckReq](h.Check))
	server.POST("/group/token", ginx.B[TokenReq](h.IssueToken))
	server.GET("/group/summary", ginx.W(h.Summary))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	code, err := h.svc.Create(ctx, domain.ReviewGroup{
		Reviewee:        req.Reviewee,
		ProjectName:     req.ProjectName,
		GroupAccessCode: req.GroupAccessCode,
	})
	if errors.Is(err, service.ErrCodeGenerationExhausted) {
		return codeExhaustedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateResp{ReviewRequestCode: code},
	}, nil
}

func (h *Handler) Check(ctx *ginx.Context, req CheckReq) (ginx.Result, error) {
	ok, err := h.svc.CheckAccess(ctx, req.ReviewRequestCode, req.GroupAccessCode)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CheckResp{HasAccess: ok},
	}, nil
}

func (h *Handler) IssueToken(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	token, err := h.svc.IssueToken(ctx, req.ReviewRequestCode, req.GroupAccessCode)
	if errors.Is(err, service.ErrReviewGroupNotFound) {
		return accessDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TokenResp{ReviewRequestToken: token},
	}, nil
}

func (h *Handler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	g, err := h.svc.ResolveByRequestCode(ctx, ctx.Query("reviewRequestCode").StringOrDefault(""))
	if errors.Is(err, service.ErrReviewGroupNotFound) {
		return accessDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SummaryResp{
			Reviewee:    g.Reviewee,
			ProjectName: g.ProjectName,
		},
	}, nil
}

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/template/internal/service"
)

type Handler struct {
	svc      service.TemplateService
	groupSvc group.Service
	logger   *elog.Component
}

func NewHandler(svc service.TemplateService, groupSvc group.Service) *Handler {
	return &Handler{
		svc:      svc,
		groupSvc: groupSvc,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/template/form", ginx.W(h.Form))
	server.GET("/template/form/token", ginx.W(h.FormByToken))
}

// Form 按评价请求码拉取个性化之后的表单
func (h *Handler) Form(ctx *ginx.Context) (ginx.Result, error) {
	g, err := h.groupSvc.ResolveByRequestCode(ctx, ctx.Query("reviewRequestCode").StringOrDefault(""))
	if errors.Is(err, group.ErrReviewGroupNotFound) {
		return accessDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.assemble(ctx, g)
}

// FormByToken 和 Form 一样，只是用已签发的令牌定位回顾组
func (h *Handler) FormByToken(ctx *ginx.Context) (ginx.Result, error) {
	g, err := h.groupSvc.ResolveToken(ctx, ctx.Query("reviewRequestToken").StringOrDefault(""))
	if errors.Is(err, group.ErrReviewGroupNotFound) {
		return accessDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.assemble(ctx, g)
}

func (h *Handler) assemble(ctx *ginx.Context, g group.ReviewGroup) (ginx.Result, error) {
	form, err := h.svc.Assemble(ctx, g.ID, g.TemplateID, g.Reviewee, g.ProjectName)
	if errors.Is(err, service.ErrDataIntegrity) {
		h.logger.Error("模板数据不完整",
			elog.FieldErr(err),
			elog.Int64("templateID", g.TemplateID))
		return dataIntegrityResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newFormVO(form),
	}, nil
}

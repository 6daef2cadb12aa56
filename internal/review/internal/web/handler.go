package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review/internal/service"
)

type Handler struct {
	svc    service.ReviewService
	logger *elog.Component
}

func NewHandler(svc service.ReviewService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/review/save", ginx.B[SaveReq](h.Save))
	server.POST("/review/list", ginx.B[ListReq](h.List))
	server.POST("/review/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Register(ctx, req.ReviewRequestCode, req.toDomain())
	switch {
	case errors.Is(err, group.ErrReviewGroupNotFound):
		return accessDeniedResult, err
	case errors.Is(err, service.ErrInvalidAnswer):
		return ginx.Result{
			Code: invalidAnswerResult.Code,
			Msg:  err.Error(),
		}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveResp{ReviewID: id},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	received, err := h.svc.List(ctx, req.ReviewRequestCode, req.GroupAccessCode)
	if errors.Is(err, group.ErrReviewGroupNotFound) {
		return accessDeniedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newListResp(received),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.ReviewRequestCode, req.GroupAccessCode, req.ReviewID)
	switch {
	case errors.Is(err, group.ErrReviewGroupNotFound):
		return accessDeniedResult, err
	case errors.Is(err, service.ErrReviewNotFound):
		return reviewNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDetailResp(detail),
	}, nil
}

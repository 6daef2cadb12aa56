package group

import (
	"github.com/reviewme/reviewme/internal/group/internal/domain"
	"github.com/reviewme/reviewme/internal/group/internal/service"
	"github.com/reviewme/reviewme/internal/group/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type ReviewGroup = domain.ReviewGroup

// Service 方便别的模块引用和测试
type Service = service.ReviewGroupService

var (
	ErrReviewGroupNotFound     = service.ErrReviewGroupNotFound
	ErrCodeGenerationExhausted = service.ErrCodeGenerationExhausted
)

type Module struct {
	Hdl *Handler
	Svc Service
}

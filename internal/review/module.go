package review

import (
	"github.com/reviewme/reviewme/internal/review/internal/service"
	"github.com/reviewme/reviewme/internal/review/internal/web"
)

type Module struct {
	Hdl *Hdl
	Svc Svc
}

type Hdl = web.Handler
type Svc = service.ReviewService

var (
	ErrInvalidAnswer  = service.ErrInvalidAnswer
	ErrReviewNotFound = service.ErrReviewNotFound
)

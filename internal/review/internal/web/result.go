package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/reviewme/reviewme/internal/review/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	accessDeniedResult = ginx.Result{
		Code: errs.AccessDenied.Code,
		Msg:  errs.AccessDenied.Msg,
	}
	invalidAnswerResult = ginx.Result{
		Code: errs.InvalidAnswer.Code,
		Msg:  errs.InvalidAnswer.Msg,
	}
	reviewNotFoundResult = ginx.Result{
		Code: errs.ReviewNotFound.Code,
		Msg:  errs.ReviewNotFound.Msg,
	}
)

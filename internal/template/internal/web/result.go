package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/reviewme/reviewme/internal/template/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	dataIntegrityResult = ginx.Result{
		Code: errs.DataIntegrity.Code,
		Msg:  errs.DataIntegrity.Msg,
	}
	accessDeniedResult = ginx.Result{
		Code: errs.AccessDenied.Code,
		Msg:  errs.AccessDenied.Msg,
	}
)

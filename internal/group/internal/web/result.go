package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/reviewme/reviewme/internal/group/internal/errs"
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
	codeExhaustedResult = ginx.Result{
		Code: errs.CodeExhausted.Code,
		Msg:  errs.CodeExhausted.Msg,
	}
)

package errs

var (
	SystemError    = ErrorCode{Code: 513001, Msg: "系统错误"}
	AccessDenied   = ErrorCode{Code: 513002, Msg: "无权限访问"}
	InvalidAnswer  = ErrorCode{Code: 513003, Msg: "作答不符合要求"}
	ReviewNotFound = ErrorCode{Code: 513004, Msg: "评价不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

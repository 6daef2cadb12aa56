package errs

var (
	SystemError = ErrorCode{Code: 511001, Msg: "系统错误"}
	// AccessDenied 不区分是请求码还是确认码错了
	AccessDenied  = ErrorCode{Code: 511002, Msg: "请求码或确认码不正确"}
	CodeExhausted = ErrorCode{Code: 511003, Msg: "生成请求码失败，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

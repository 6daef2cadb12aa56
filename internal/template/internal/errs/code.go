package errs

var (
	SystemError   = ErrorCode{Code: 512001, Msg: "系统错误"}
	DataIntegrity = ErrorCode{Code: 512002, Msg: "模板数据不完整"}
	AccessDenied  = ErrorCode{Code: 512003, Msg: "无权限访问"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

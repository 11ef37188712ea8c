package mod

type ResponseValue struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type ResponseData struct {
	ResponseValue
	Data interface{} `json:"data"`
}

const (
	//成功
	ResponseCodeSuccess = 1001
	//失败
	ResponseCodeFailure = 1002
	//缺少参数
	ResponseCodeMissingParams = 1003
	//非法参数
	ResponseCodeInvalidParams = 1004
)

func Success(data interface{}) ResponseData {
	return ResponseData{ResponseValue: ResponseValue{Code: ResponseCodeSuccess, Msg: "success"}, Data: data}
}

func Failure(code int, msg string) ResponseValue {
	return ResponseValue{Code: code, Msg: msg}
}

package serverutils

type Response struct {
	Success   bool        `json:"success"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	ErrorType string      `json:"error_type,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) *Response {
	return &Response{
		Success:   false,
		Code:      code,
		Message:   message,
		ErrorType: errorType(code),
	}
}

func errorType(code int) string {
	switch {
	case code == 400:
		return "bad_request"
	case code == 404:
		return "not_found"
	case code == 409:
		return "conflict"
	case code >= 500:
		return "internal_error"
	}
	return "request_error"
}

package response

type Body struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Body {
	return Body{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func Error(code, message string, data any) Body {
	return Body{
		Success: false,
		Code:    code,
		Message: message,
		Data:    data,
	}
}

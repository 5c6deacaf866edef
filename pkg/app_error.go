package pkg

// AppError is the HTTP-facing error envelope. Handlers map domain sentinel
// errors into AppErrors so gateway-internal detail never leaks to clients.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

package errors

import "fmt"

var (
	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")
)

// HttpError - ошибка с HTTP-кодом и сообщением для клиента.
// Err хранит исходную причину и наружу не отдается.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

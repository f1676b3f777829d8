package httperr

import "errors"

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
)

// BusinessError é um erro produzido pelas regras do próprio sistema.
// Qualquer outro erro é tratado como falha de armazenamento.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Field   string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func Validation(field, code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Field: field}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Kind == kind
	}
	return false
}

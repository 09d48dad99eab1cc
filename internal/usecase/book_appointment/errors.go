package book_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrRejected возвращается, когда движок доступности отклонил слот. Конкретный вердикт в RejectionError.
	ErrRejected = errors.New("book_appointment: slot rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// RejectionError отказ движка доступности с вердиктом без изменений
type RejectionError struct {
	Verdict domain.Verdict
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Verdict)
}

// Is позволяет проверять отказ через errors.Is(err, ErrRejected)
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// VerdictOf достает вердикт из ошибки отказа
func VerdictOf(err error) (domain.Verdict, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Verdict, true
	}
	return "", false
}

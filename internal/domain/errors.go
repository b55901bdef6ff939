package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrPermissionDenied - действие запрещено для этого пользователя
	ErrPermissionDenied = &DomainError{
		Code:    "PERMISSION_DENIED",
		Message: "action is not permitted for this user",
	}

	// ErrTeamHasMembers - нельзя удалить команду, пока в ней есть участники
	ErrTeamHasMembers = &DomainError{
		Code:    "TEAM_HAS_MEMBERS",
		Message: "cannot remove team with members",
	}

	// ErrHolidayLocked - в праздничный день статус менять нельзя
	ErrHolidayLocked = &DomainError{
		Code:    "HOLIDAY_LOCKED",
		Message: "cannot set work location on a holiday",
	}

	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrStorageFailed - ошибка сериализации или записи в хранилище
	ErrStorageFailed = &DomainError{
		Code:    "STORAGE_FAILED",
		Message: "storage operation failed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_FAILED с дополнительным контекстом
func NewValidationError(detail string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: detail,
	}
}

// NewStorageError создает ошибку STORAGE_FAILED, сохраняя причину в сообщении
func NewStorageError(op string, cause error) *DomainError {
	return &DomainError{
		Code:    "STORAGE_FAILED",
		Message: fmt.Sprintf("%s: %v", op, cause),
	}
}

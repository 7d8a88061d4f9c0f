package users

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrCredentialsRequired возвращается, когда не передан email или пароль
	ErrCredentialsRequired = fmt.Errorf("%w: email and password are required", domain.ErrValidation)

	// ErrInvalidEmail возвращается для email без @
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", domain.ErrValidation)

	// ErrPasswordTooShort возвращается для слишком короткого пароля
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)

	// ErrKYCDocumentsRequired возвращается, когда не переданы обе ссылки на документы
	ErrKYCDocumentsRequired = fmt.Errorf("%w: dni photo and selfie urls are required", domain.ErrValidation)

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = fmt.Errorf("%w: email already registered", domain.ErrConflict)

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("%w: user not found", domain.ErrNotFound)

	// ErrAlreadyVerified возвращается при повторном одобрении
	ErrAlreadyVerified = fmt.Errorf("%w: user is already verified", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: users", domain.ErrInternal)
)

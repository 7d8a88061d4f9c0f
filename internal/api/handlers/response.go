// Package handlers общие хелперы HTTP слоя: JSON ответы, разбор тела и
// параметров пути, перевод ошибок домена в HTTP статусы.
package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgConcurrent    = "данные были изменены параллельным запросом, повторите попытку"
)

// ErrInvalidID возвращается, когда параметр пути не является UUID
var ErrInvalidID = errors.New("handlers: invalid id")

// ErrorResponse конверт ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет value как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if value == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(value)
}

// RespondError пишет конверт ошибки
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError не раскрывает детали ошибки клиенту
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFor переводит вид ошибки домена в HTTP статус
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, txmanager.ErrSerialization):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError пишет ошибку usecase/сервиса и возвращает выбранный статус.
// Для 500 клиент получает общее сообщение.
func RespondDomainError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		RespondInternalError(w)
	case errors.Is(err, txmanager.ErrSerialization) && !errors.Is(err, domain.ErrConflict):
		RespondError(w, status, msgConcurrent)
	default:
		RespondError(w, status, err.Error())
	}
	return status
}

// DecodeJSON разбирает тело запроса
func DecodeJSON(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

// PathUUID извлекает UUID из параметра пути gorilla/mux
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Fail пишет ошибку и логирует ее: 5xx как Error, остальное как Warn.
// op - метод, маршрут и контекст запроса для лога.
func Fail(w http.ResponseWriter, logger Logger, op string, err error) {
	status := RespondDomainError(w, err)
	if status >= http.StatusInternalServerError {
		logger.Error("%s - failed: %v", op, err)
		return
	}
	logger.Warn("%s - rejected with %d: %v", op, status, err)
}

// ClientIP адрес клиента: первый X-Forwarded-For или RemoteAddr без порта
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

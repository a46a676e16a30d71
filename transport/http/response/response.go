package response

import (
	"encoding/json"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/logger"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the human message and, for business rejections, a stable reason code clients branch on.
type Error struct {
	Error  *string `json:"error,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError maps err to its status. Infrastructure faults are logged and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	errMsg := err.Error()
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("request failed")

		errMsg = constant.ResponseErrorInternal
	}

	write(writer, code, Error{Error: &errMsg, Reason: failure.GetReason(err)})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

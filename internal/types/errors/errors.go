package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrPersist            = errors.New("failed to persist cart")
	ErrCorruptData        = errors.New("stored value is not valid JSON")

	ErrBadID              = errors.New("bad id")
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
	ErrInvalidPrice       = errors.New("price must not be negative")

	ErrEmptyCart     = errors.New("your cart is empty")
	ErrMissingFields = errors.New("please fill in all required fields")
	ErrBadDelivery   = errors.New("unknown delivery option")
	ErrInvalidCoupon = errors.New("invalid coupon code")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}

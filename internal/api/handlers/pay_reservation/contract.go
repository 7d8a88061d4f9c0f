package pay_reservation

import (
	"context"

	payReservation "github.com/m04kA/SMC-GarageService/internal/usecase/pay_reservation"
)

type PayReservationUseCase interface {
	Execute(ctx context.Context, req *payReservation.Request) (*payReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

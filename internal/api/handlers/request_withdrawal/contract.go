package request_withdrawal

import (
	"context"

	requestWithdrawal "github.com/m04kA/SMC-GarageService/internal/usecase/request_withdrawal"
)

type RequestWithdrawalUseCase interface {
	Execute(ctx context.Context, req *requestWithdrawal.Request) (*requestWithdrawal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package resolve_dispute

import (
	"context"

	resolveDispute "github.com/m04kA/SMC-GarageService/internal/usecase/resolve_dispute"
)

type ResolveDisputeUseCase interface {
	Execute(ctx context.Context, req *resolveDispute.Request) (*resolveDispute.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

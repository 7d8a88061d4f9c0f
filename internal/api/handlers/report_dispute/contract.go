package report_dispute

import (
	"context"

	reportDispute "github.com/m04kA/SMC-GarageService/internal/usecase/report_dispute"
)

type ReportDisputeUseCase interface {
	Execute(ctx context.Context, req *reportDispute.Request) (*reportDispute.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

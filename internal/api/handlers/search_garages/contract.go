package search_garages

import (
	"context"

	searchGarages "github.com/m04kA/SMC-GarageService/internal/usecase/search_garages"
)

type SearchGaragesUseCase interface {
	Execute(ctx context.Context, req *searchGarages.Request) (*searchGarages.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

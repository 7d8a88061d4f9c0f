package search_garages

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	searchGarages "github.com/m04kA/SMC-GarageService/internal/usecase/search_garages"
)

type Handler struct {
	useCase SearchGaragesUseCase
	logger  Logger
}

func NewHandler(useCase SearchGaragesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/search
// Query params: fecha (YYYY-MM-DD), hora_inicio (HH:MM), hora_fin (HH:MM), все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &searchGarages.Request{
		Date:      query.Get("fecha"),
		StartTime: query.Get("hora_inicio"),
		EndTime:   query.Get("hora_fin"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /search fecha=%s %s-%s", req.Date, req.StartTime, req.EndTime), err)
		return
	}

	h.logger.Info("GET /search - Found %d garages (cached=%t)", result.Total, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

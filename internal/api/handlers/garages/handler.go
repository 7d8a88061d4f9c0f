package garages

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	garagesService "github.com/m04kA/SMC-GarageService/internal/service/garages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGarageID    = "некорректный ID гаража"
	msgMissingDayOfWeek   = "dia_semana обязателен"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	service GarageService
	logger  Logger
}

func NewHandler(service GarageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/garages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateGarageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /garages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	garage, err := h.service.Create(r.Context(), req.ToServiceRequest(actor.ID))
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /garages owner=%s", actor.ID), err)
		return
	}

	h.logger.Info("POST /garages - Garage created: garage=%s, owner=%s", garage.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromGarage(garage))
}

// Get GET /api/v1/garages/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	garageID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGarageID)
		return
	}

	details, err := h.service.Get(r.Context(), garageID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /garages/%s", garageID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDetails(details))
}

// ListMine GET /api/v1/garages/mine
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	list, err := h.service.ListMine(r.Context(), actor.ID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /garages/mine owner=%s", actor.ID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromGarages(list))
}

// SetSchedule POST /api/v1/garages/{id}/horarios
func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	actor, garageID, ok := h.ownerRequest(w, r)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DayOfWeek == nil {
		handlers.RespondBadRequest(w, msgMissingDayOfWeek)
		return
	}

	schedule, err := h.service.SetSchedule(r.Context(), &garagesService.ScheduleRequest{
		ActorID:   actor.ID,
		GarageID:  garageID,
		DayOfWeek: *req.DayOfWeek,
		IsOpen:    req.IsOpen,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /garages/%s/horarios", garageID), err)
		return
	}

	h.logger.Info("POST /garages/{id}/horarios - Schedule saved: garage=%s, day=%d", garageID, schedule.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, models.FromSchedule(schedule))
}

// AddService POST /api/v1/garages/{id}/servicios
func (h *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	actor, garageID, ok := h.ownerRequest(w, r)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.AddService(r.Context(), &garagesService.ServiceRequest{
		ActorID:  actor.ID,
		GarageID: garageID,
		Name:     req.Name,
		Price:    domain.CentsFromFloat(req.Price),
		PerDay:   req.PerDay,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /garages/%s/servicios", garageID), err)
		return
	}

	h.logger.Info("POST /garages/{id}/servicios - Service added: garage=%s, service=%s", garageID, service.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromService(service))
}

// BlockDate POST /api/v1/garages/{id}/bloquear-fecha
func (h *Handler) BlockDate(w http.ResponseWriter, r *http.Request) {
	actor, garageID, ok := h.ownerRequest(w, r)
	if !ok {
		return
	}

	var req BlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blackout, err := h.service.BlockDate(r.Context(), &garagesService.BlackoutRequest{
		ActorID:  actor.ID,
		GarageID: garageID,
		Date:     req.Date,
		Reason:   req.Reason,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /garages/%s/bloquear-fecha date=%s", garageID, req.Date), err)
		return
	}

	h.logger.Info("POST /garages/{id}/bloquear-fecha - Date blocked: garage=%s, date=%s", garageID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, models.FromBlackout(blackout))
}

// AddImage POST /api/v1/garages/{id}/imagenes
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	actor, garageID, ok := h.ownerRequest(w, r)
	if !ok {
		return
	}

	var req ImageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	img, err := h.service.AddImage(r.Context(), &garagesService.ImageRequest{
		ActorID:  actor.ID,
		GarageID: garageID,
		URL:      req.URL,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /garages/%s/imagenes", garageID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, models.FromImage(img))
}

// ownerRequest извлекает actor и ID гаража; владение проверяет сервис
func (h *Handler) ownerRequest(w http.ResponseWriter, r *http.Request) (*auth.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return nil, uuid.Nil, false
	}

	garageID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGarageID)
		return nil, uuid.Nil, false
	}

	return actor, garageID, true
}

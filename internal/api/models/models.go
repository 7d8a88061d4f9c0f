// Package models JSON представления сущностей домена для HTTP ответов.
// Суммы отдаются в основных единицах валюты (12.50), даты - YYYY-MM-DD,
// время суток - HH:MM, моменты - RFC3339.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// UserResponse пользователь без хэша пароля
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   *string   `json:"full_name,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	HasKYC     bool      `json:"has_kyc_documents"`
	CreatedAt  string    `json:"created_at"`
}

func FromUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		HasKYC:     u.HasKYCDocuments(),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

// AmenitiesResponse удобства гаража
type AmenitiesResponse struct {
	Wifi        bool `json:"wifi"`
	Bathroom    bool `json:"bathroom"`
	Electricity bool `json:"electricity"`
	Table       bool `json:"table"`
}

func FromAmenities(a domain.Amenities) AmenitiesResponse {
	return AmenitiesResponse{Wifi: a.Wifi, Bathroom: a.Bathroom, Electricity: a.Electricity, Table: a.Table}
}

// GarageResponse гараж
type GarageResponse struct {
	ID                    uuid.UUID         `json:"id"`
	OwnerID               uuid.UUID         `json:"owner_id"`
	Name                  string            `json:"name"`
	Description           *string           `json:"description,omitempty"`
	Address               *string           `json:"address,omitempty"`
	Latitude              *float64          `json:"latitude,omitempty"`
	Longitude             *float64          `json:"longitude,omitempty"`
	HourlyRate            *float64          `json:"hourly_rate,omitempty"`
	DailyRate             *float64          `json:"daily_rate,omitempty"`
	MinHours              int               `json:"min_hours"`
	CleaningBufferMinutes int               `json:"cleaning_buffer_minutes"`
	Amenities             AmenitiesResponse `json:"amenities"`
	Services              []ServiceResponse `json:"services,omitempty"`
}

func FromGarage(g *domain.Garage) *GarageResponse {
	return &GarageResponse{
		ID:                    g.ID,
		OwnerID:               g.OwnerID,
		Name:                  g.Name,
		Description:           g.Description,
		Address:               g.Address,
		Latitude:              g.Latitude,
		Longitude:             g.Longitude,
		HourlyRate:            money(g.HourlyRate),
		DailyRate:             money(g.DailyRate),
		MinHours:              g.MinHours,
		CleaningBufferMinutes: g.CleaningBufferMinutes,
		Amenities:             FromAmenities(g.Amenities),
	}
}

// ServiceResponse дополнительная услуга гаража
type ServiceResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	PerDay bool      `json:"per_day"`
}

func FromService(s *domain.ExtraService) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price.Float(), PerDay: s.PerDay}
}

// ScheduleResponse расписание на день недели
type ScheduleResponse struct {
	ID        uuid.UUID `json:"id"`
	GarageID  uuid.UUID `json:"garage_id"`
	DayOfWeek int       `json:"day_of_week"`
	IsOpen    bool      `json:"is_open"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
}

func FromSchedule(s *domain.WeeklySchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        s.ID,
		GarageID:  s.GarageID,
		DayOfWeek: s.DayOfWeek,
		IsOpen:    s.IsOpen,
		OpenTime:  s.OpenTime.String(),
		CloseTime: s.CloseTime.String(),
	}
}

// BlackoutResponse заблокированная дата
type BlackoutResponse struct {
	ID       uuid.UUID `json:"id"`
	GarageID uuid.UUID `json:"garage_id"`
	Date     string    `json:"date"`
	Reason   *string   `json:"reason,omitempty"`
}

func FromBlackout(b *domain.BlackoutDate) *BlackoutResponse {
	return &BlackoutResponse{ID: b.ID, GarageID: b.GarageID, Date: b.Date.Format(domain.DateFormat), Reason: b.Reason}
}

// ImageResponse фото гаража
type ImageResponse struct {
	ID       uuid.UUID `json:"id"`
	GarageID uuid.UUID `json:"garage_id"`
	URL      string    `json:"url"`
}

func FromImage(img *domain.GarageImage) *ImageResponse {
	return &ImageResponse{ID: img.ID, GarageID: img.GarageID, URL: img.URL}
}

// ReservationDateResponse дата бронирования
type ReservationDateResponse struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	CheckInAt  *string   `json:"check_in_at,omitempty"`
	CheckOutAt *string   `json:"check_out_at,omitempty"`
}

// ReservationServiceResponse услуга, зафиксированная в бронировании
type ReservationServiceResponse struct {
	ServiceID   uuid.UUID `json:"service_id"`
	Quantity    int       `json:"quantity"`
	AgreedPrice float64   `json:"agreed_price"`
}

// ReservationResponse бронирование
type ReservationResponse struct {
	ID             uuid.UUID                    `json:"id"`
	RenterID       uuid.UUID                    `json:"renter_id"`
	OwnerID        uuid.UUID                    `json:"owner_id"`
	GarageID       uuid.UUID                    `json:"garage_id"`
	Status         string                       `json:"status"`
	ChargeMode     string                       `json:"charge_mode"`
	Subtotal       float64                      `json:"subtotal"`
	ServicesSum    float64                      `json:"services_total"`
	Total          float64                      `json:"total"`
	Commission     float64                      `json:"commission"`
	OwnerPayout    float64                      `json:"owner_payout"`
	InitialMessage *string                      `json:"initial_message,omitempty"`
	WaiverVersion  string                       `json:"waiver_version"`
	Dates          []ReservationDateResponse    `json:"dates"`
	Services       []ReservationServiceResponse `json:"services"`
	CreatedAt      string                       `json:"created_at"`
}

func FromReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:             r.ID,
		RenterID:       r.RenterID,
		OwnerID:        r.OwnerID,
		GarageID:       r.GarageID,
		Status:         string(r.Status),
		ChargeMode:     string(r.ChargeMode),
		Subtotal:       r.Subtotal.Float(),
		ServicesSum:    r.ServicesSum.Float(),
		Total:          r.Total.Float(),
		Commission:     r.Commission.Float(),
		OwnerPayout:    r.OwnerPayout.Float(),
		InitialMessage: r.InitialMessage,
		WaiverVersion:  r.WaiverVersion,
		Dates:          make([]ReservationDateResponse, 0, len(r.Dates)),
		Services:       make([]ReservationServiceResponse, 0, len(r.Services)),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}

	for _, d := range r.Dates {
		resp.Dates = append(resp.Dates, ReservationDateResponse{
			ID:         d.ID,
			Date:       d.Date.Format(domain.DateFormat),
			StartTime:  d.StartTime.String(),
			EndTime:    d.EndTime.String(),
			Status:     string(d.Status),
			CheckInAt:  timestamp(d.CheckInAt),
			CheckOutAt: timestamp(d.CheckOutAt),
		})
	}
	for _, s := range r.Services {
		resp.Services = append(resp.Services, ReservationServiceResponse{
			ServiceID:   s.ServiceID,
			Quantity:    s.Quantity,
			AgreedPrice: s.AgreedPrice.Float(),
		})
	}

	return resp
}

func FromReservations(list []*domain.Reservation) []*ReservationResponse {
	resp := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, FromReservation(r))
	}
	return resp
}

// PaymentProofResponse чек об оплате
type PaymentProofResponse struct {
	ID            uuid.UUID `json:"id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	ImageURL      *string   `json:"image_url,omitempty"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
}

func FromPaymentProof(p *domain.PaymentProof) *PaymentProofResponse {
	return &PaymentProofResponse{
		ID:            p.ID,
		Amount:        p.Amount.Float(),
		Method:        p.Method,
		ImageURL:      p.ImageURL,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
	}
}

// EvidenceResponse фотофиксация
type EvidenceResponse struct {
	ID       uuid.UUID `json:"id"`
	DateID   uuid.UUID `json:"reservation_date_id"`
	Moment   string    `json:"moment"`
	PhotoURL *string   `json:"photo_url,omitempty"`
	Comments *string   `json:"comments,omitempty"`
}

func FromEvidence(e *domain.Evidence) *EvidenceResponse {
	return &EvidenceResponse{
		ID:       e.ID,
		DateID:   e.ReservationDateID,
		Moment:   string(e.Moment),
		PhotoURL: e.PhotoURL,
		Comments: e.Comments,
	}
}

// MovementResponse движение по кошельку
type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Amount        float64    `json:"amount"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	Description   string     `json:"description"`
	CreatedAt     string     `json:"created_at"`
}

// FromMovement возвращает nil для nil
func FromMovement(m *domain.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:            m.ID,
		Type:          string(m.Type),
		Amount:        m.Amount.Float(),
		ReservationID: m.ReservationID,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}

// WithdrawalResponse заявка на вывод
type WithdrawalResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Amount        float64   `json:"amount"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	Status        string    `json:"status"`
	ProofURL      *string   `json:"proof_url,omitempty"`
	ProcessedAt   *string   `json:"processed_at,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

func FromWithdrawal(w *domain.WithdrawalRequest) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:            w.ID,
		OwnerID:       w.OwnerID,
		Amount:        w.Amount.Float(),
		BankName:      w.BankName,
		AccountNumber: w.AccountNumber,
		Status:        string(w.Status),
		ProofURL:      w.ProofURL,
		ProcessedAt:   timestamp(w.ProcessedAt),
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
	}
}

// TicketResponse тикет спора
type TicketResponse struct {
	ID              uuid.UUID `json:"id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	ReporterID      uuid.UUID `json:"reporter_id"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	PreviousStatus  string    `json:"previous_reservation_status"`
	ResolutionNotes *string   `json:"resolution_notes,omitempty"`
	ClosedAt        *string   `json:"closed_at,omitempty"`
}

func FromTicket(t *domain.DisputeTicket) *TicketResponse {
	return &TicketResponse{
		ID:              t.ID,
		ReservationID:   t.ReservationID,
		ReporterID:      t.ReporterID,
		Category:        t.Category,
		Description:     t.Description,
		Status:          string(t.Status),
		PreviousStatus:  string(t.PreviousStatus),
		ResolutionNotes: t.ResolutionNotes,
		ClosedAt:        timestamp(t.ClosedAt),
	}
}

// RatingResponse оценка
type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	TargetID      uuid.UUID `json:"target_id"`
	TargetType    string    `json:"target_type"`
	Score         int       `json:"score"`
	Comment       *string   `json:"comment,omitempty"`
}

func FromRating(r *domain.Rating) *RatingResponse {
	return &RatingResponse{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		AuthorID:      r.AuthorID,
		TargetID:      r.TargetID,
		TargetType:    string(r.TargetType),
		Score:         r.Score,
		Comment:       r.Comment,
	}
}

func money(c *domain.Cents) *float64 {
	if c == nil {
		return nil
	}
	v := c.Float()
	return &v
}

func timestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Description  string    `json:"description,omitempty"`
	PricePerHour float64   `json:"pricePerHour"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Features     []string  `json:"features"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	features := c.Features
	if features == nil {
		features = []string{}
	}

	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		Description:  c.Description,
		PricePerHour: c.PricePerHour,
		ImageURL:     c.ImageURL,
		Features:     features,
		Rating:       c.Rating,
		CreatedAt:    c.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}

	return resp
}

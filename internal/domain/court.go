package domain

import "time"

// Court represents a bookable court
// Справочные данные: создаются и редактируются внешним админским процессом,
// сервис бронирования их только читает
type Court struct {
	ID           string
	Name         string
	Location     string
	Description  string
	PricePerHour float64
	ImageURL     string
	Features     []string
	Rating       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на получение слотов корта
type Request struct {
	CourtID string    // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со слотами корта на дату
type Response struct {
	CourtID string
	Date    time.Time
	Slots   []Slot
}

// Slot временной слот с признаком занятости
// Слот доступен для выбора, если IsBooked == false; политика, что делать
// с занятым слотом, остаётся на вызывающей стороне
type Slot struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	IsBooked  bool
}

// FromDomainSlots конвертирует доменные слоты в модель ответа
func FromDomainSlots(courtID string, date time.Time, slots []*domain.TimeSlot) *Response {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsBooked:  s.IsBooked,
		}
	}

	return &Response{
		CourtID: courtID,
		Date:    date,
		Slots:   result,
	}
}

package domain

import "time"

// TimeSlot represents one offerable period on a court
// Слоты генерируются внешним процессом заранее (на каждый корт на каждый день)
type TimeSlot struct {
	ID        string
	CourtID   string
	StartTime time.Time // Инвариант: StartTime < EndTime
	EndTime   time.Time
	IsBooked  bool
}

// CoversDate returns true if the slot starts within the given calendar date
func (s *TimeSlot) CoversDate(date time.Time) bool {
	y1, m1, d1 := s.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

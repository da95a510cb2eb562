package domain

import "time"

// CourtType тип корта
type CourtType string

const (
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

// IsValid проверяет, что тип корта допустим
func (t CourtType) IsValid() bool {
	return t == CourtTypeIndoor || t == CourtTypeOutdoor
}

// Court корт — бронируемый ресурс с вместимостью 1 на слот
type Court struct {
	ID        int64
	Name      string
	Type      CourtType
	BasePrice float64 // Базовая цена за часовой слот
	CreatedAt time.Time
}

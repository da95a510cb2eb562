package domain

import "time"

// Coach тренер — бронируемый ресурс с вместимостью 1 на слот
// Ставка тренера добавляется к цене как есть, правила ценообразования на неё не действуют
type Coach struct {
	ID         int64
	Name       string
	HourlyRate float64
	CreatedAt  time.Time
}

package domain

import "time"

// Equipment инвентарь — счётный пул единиц без индивидуальной идентичности
//
// Stock — общий запас на каждый (дата, слот): единицы выдаются на час
// и возвращаются, поэтому запас не убывает насовсем, а разделяется
// между бронированиями одного слота.
type Equipment struct {
	ID        int64
	Name      string
	Stock     int
	Price     float64 // Цена за единицу за слот
	CreatedAt time.Time
}

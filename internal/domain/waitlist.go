package domain

import "time"

// WaitlistEntry запись в листе ожидания на (корт, дата, слот)
//
// Создается, когда клиент пытается забронировать занятый слот.
// При освобождении слота уведомляется самая ранняя запись (FIFO по created_at);
// бронирование за клиента при этом НЕ создается — он бронирует заново сам.
type WaitlistEntry struct {
	ID        int64
	UserID    string
	CourtID   int64
	Date      time.Time
	Slot      int
	CreatedAt time.Time
}

package notifier

// RoutingKeySlotFreed ключ маршрутизации события освобождения слота
const RoutingKeySlotFreed = "waitlist.slot_freed"

// SlotFreedEvent событие "слот освободился" для самой ранней записи листа ожидания
//
// Уведомление советующее: бронирование за клиента не создается, он должен
// запросить его сам и пройти обычные проверки занятости.
type SlotFreedEvent struct {
	UserID  string `json:"userId"`
	CourtID int64  `json:"courtId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Slot    int    `json:"slot"`
}

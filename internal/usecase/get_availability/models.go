package get_availability

// SlotAvailability занятость одного часового слота
type SlotAvailability struct {
	Slot             int     `json:"slot"`
	OccupiedCourtIDs []int64 `json:"occupiedCourtIds"`
	OccupiedCoachIDs []int64 `json:"occupiedCoachIds"`
}

// Response карта занятости на календарный день по всем слотам 9..21
type Response struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}

package domain

// Диапазон слотов операционного дня
// Слот идентифицируется часом начала: 9 — это 09:00-10:00, 21 — 21:00-22:00
const (
	MinSlot = 9
	MaxSlot = 21
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRuleNameLength  = 100
	MaxCourtNameLength = 100
	MaxEquipmentQty    = 100 // Верхняя граница запрашиваемого количества одной позиции
)

// Slots возвращает все слоты операционного дня по порядку
func Slots() []int {
	slots := make([]int, 0, MaxSlot-MinSlot+1)
	for s := MinSlot; s <= MaxSlot; s++ {
		slots = append(slots, s)
	}
	return slots
}

// IsValidSlot проверяет, что час слота входит в операционный день
func IsValidSlot(slot int) bool {
	return slot >= MinSlot && slot <= MaxSlot
}

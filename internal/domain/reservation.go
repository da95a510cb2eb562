package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// EquipmentMap отображение equipment_id -> количество зарезервированных единиц
// Хранится в JSONB-колонке; ключи JSON — строки, поэтому нужна конвертация
type EquipmentMap map[int64]int

// Value сериализует карту инвентаря в JSONB
func (m EquipmentMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}
	raw := make(map[string]int, len(m))
	for id, qty := range m {
		raw[strconv.FormatInt(id, 10)] = qty
	}
	return json.Marshal(raw)
}

// Scan десериализует карту инвентаря из JSONB
func (m *EquipmentMap) Scan(src interface{}) error {
	if src == nil {
		*m = EquipmentMap{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: cannot scan %T into EquipmentMap", src)
	}

	raw := make(map[string]int)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("domain: unmarshal equipment map: %w", err)
	}

	result := make(EquipmentMap, len(raw))
	for key, qty := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("domain: invalid equipment id %q: %w", key, err)
		}
		result[id] = qty
	}
	*m = result
	return nil
}

// SortedIDs возвращает id позиций инвентаря по возрастанию
// Фиксированный порядок обхода — проверки и суммы воспроизводимы
func (m EquipmentMap) SortedIDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Reservation подтвержденное бронирование корта на один часовой слот
//
// Инварианты:
//   - на (court_id, date, slot) существует не более одного бронирования
//   - на (coach_id, date, slot) существует не более одного бронирования
//   - сумма количеств по каждому equipment_id в рамках (date, slot)
//     не превышает запас этой позиции
//
// Создается только через атомарный протокол бронирования, удаляется
// только через отмену; после создания не изменяется.
type Reservation struct {
	ID         int64
	UserID     string // Идентификатор клиента (непрозрачная строка, доверяется как есть)
	CourtID    int64
	CoachID    *int64 // nil — бронирование без тренера
	Date       time.Time
	Slot       int // Час начала слота (9..21)
	Equipment  EquipmentMap
	TotalPrice float64
	CreatedAt  time.Time
}

// HasCoach возвращает true, если к бронированию привязан тренер
func (r *Reservation) HasCoach() bool {
	return r.CoachID != nil
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	UserID  *string    // Фильтр по клиенту
	CourtID *int64     // Фильтр по корту
	Date    *time.Time // Календарный день
	Slot    *int       // Час начала слота
}

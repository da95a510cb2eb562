package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string              // Идентификатор клиента (непрозрачная строка)
	CourtID   int64               // ID корта
	Date      time.Time           // Дата бронирования (без времени)
	Slot      int                 // Час начала слота (9..21)
	CoachID   *int64              // ID тренера (nil или <= 0 — без тренера)
	Equipment domain.EquipmentMap // Запрошенный инвентарь: id -> количество
}

// Response модель ответа с созданным бронированием и расшифровкой цены
type Response struct {
	ID         int64                  // ID созданного бронирования
	UserID     string                 // Идентификатор клиента
	CourtID    int64                  // ID корта
	CoachID    *int64                 // ID тренера (nil — без тренера)
	Date       time.Time              // Дата бронирования
	Slot       int                    // Час начала слота
	Equipment  domain.EquipmentMap    // Зарезервированный инвентарь
	TotalPrice float64                // Итоговая цена (рассчитана сервером)
	Breakdown  pricingModels.Breakdown // Постатейная расшифровка цены
	CreatedAt  time.Time              // Время создания
}

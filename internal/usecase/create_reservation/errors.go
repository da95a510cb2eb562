package create_reservation

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("create_reservation: coach not found")

	// ErrEquipmentNotFound возвращается, когда позиция инвентаря не найдена
	ErrEquipmentNotFound = errors.New("create_reservation: equipment not found")

	// ErrCourtAlreadyBooked возвращается, когда корт уже забронирован на этот слот
	ErrCourtAlreadyBooked = errors.New("create_reservation: court already booked for this slot")

	// ErrCoachUnavailable возвращается, когда тренер уже занят на этот слот
	ErrCoachUnavailable = errors.New("create_reservation: coach unavailable for this slot")

	// ErrInsufficientStock возвращается, когда запаса инвентаря не хватает на этот слот
	ErrInsufficientStock = errors.New("create_reservation: insufficient equipment stock")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

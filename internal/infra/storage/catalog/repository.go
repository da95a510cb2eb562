package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочных данных: корты, тренеры, инвентарь
//
// Данные справочника читаются на каждую операцию заново, процессного кеша нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// --- Корты ---

// GetCourt получает корт по ID
func (r *Repository) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "base_price", "created_at").
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.Type,
		&court.BasePrice,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	return &court, nil
}

// ListCourts получает все корты
func (r *Repository) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "base_price", "created_at").
		From("courts").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		var createdAt sql.NullTime
		if err := rows.Scan(&court.ID, &court.Name, &court.Type, &court.BasePrice, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan row: %v", ErrScanRow, err)
		}
		court.CreatedAt = createdAt.Time
		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// CreateCourt создает новый корт (административная операция)
func (r *Repository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("name", "type", "base_price").
		Values(court.Name, court.Type, court.BasePrice).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&court.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	return court, nil
}

// --- Тренеры ---

// GetCoach получает тренера по ID
func (r *Repository) GetCoach(ctx context.Context, id int64) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "hourly_rate", "created_at").
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCoach - build select query: %v", ErrBuildQuery, err)
	}

	var coach domain.Coach
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&coach.ID,
		&coach.Name,
		&coach.HourlyRate,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoach - scan coach: %v", ErrScanRow, err)
	}

	coach.CreatedAt = createdAt.Time
	return &coach, nil
}

// ListCoaches получает всех тренеров
func (r *Repository) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "hourly_rate", "created_at").
		From("coaches").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coaches := make([]*domain.Coach, 0)
	for rows.Next() {
		var coach domain.Coach
		var createdAt sql.NullTime
		if err := rows.Scan(&coach.ID, &coach.Name, &coach.HourlyRate, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListCoaches - scan row: %v", ErrScanRow, err)
		}
		coach.CreatedAt = createdAt.Time
		coaches = append(coaches, &coach)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - rows error: %v", ErrScanRow, err)
	}

	return coaches, nil
}

// --- Инвентарь ---

// GetEquipment получает позицию инвентаря по ID
func (r *Repository) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "stock", "price", "created_at").
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.Equipment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Stock,
		&item.Price,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - scan equipment: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	return &item, nil
}

// ListEquipment получает весь инвентарь
func (r *Repository) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "stock", "price", "created_at").
		From("equipment").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		var item domain.Equipment
		var createdAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.Name, &item.Stock, &item.Price, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListEquipment - scan row: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

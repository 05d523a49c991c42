package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кортами и их временными слотами
// Корты - справочные данные (read-only), слоты мутируются только флагом is_booked
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var courtColumns = []string{
	"id",
	"name",
	"location",
	"description",
	"price_per_hour",
	"image_url",
	"features",
	"rating",
	"created_at",
	"updated_at",
}

// GetAll получает список всех кортов
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetAll - execute query", err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, err
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.Location,
		&court.Description,
		&court.PricePerHour,
		&court.ImageURL,
		pq.Array(&court.Features),
		&court.Rating,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, wrapExecError("GetByID - scan court", err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// GetByIDs получает корты по списку ID
// Используется для обогащения списков бронирований
func (r *Repository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Court, error) {
	result := make(map[string]*domain.Court, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetByIDs - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, err
		}
		result[court.ID] = court
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetSlotsByCourtAndDate получает все слоты корта на указанную дату
// Окно выборки покрывает полные сутки [00:00:00, 23:59:59] по start_time,
// сортировка по времени начала по возрастанию
func (r *Repository) GetSlotsByCourtAndDate(ctx context.Context, courtID string, date time.Time) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())

	query, args, err := psqlbuilder.Select(
		"id",
		"court_id",
		"start_time",
		"end_time",
		"is_booked",
	).
		From("time_slots").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.GtOrEq{"start_time": startOfDay}).
		Where(squirrel.LtOrEq{"start_time": endOfDay}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetSlotsByCourtAndDate - execute query", err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.CourtID, &slot.StartTime, &slot.EndTime, &slot.IsBooked); err != nil {
			return nil, fmt.Errorf("%w: GetSlotsByCourtAndDate - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByCourtAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetSlotByID получает временной слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - используется при
// создании бронирования для защиты от гонки
func (r *Repository) GetSlotByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"court_id",
		"start_time",
		"end_time",
		"is_booked",
	).
		From("time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.CourtID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, wrapExecError("GetSlotByID - scan slot", err)
	}

	return &slot, nil
}

// GetSlotsByIDs получает слоты по списку ID
// Используется для обогащения списков бронирований
func (r *Repository) GetSlotsByIDs(ctx context.Context, ids []string) (map[string]*domain.TimeSlot, error) {
	result := make(map[string]*domain.TimeSlot, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"court_id",
		"start_time",
		"end_time",
		"is_booked",
	).
		From("time_slots").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetSlotsByIDs - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.CourtID, &slot.StartTime, &slot.EndTime, &slot.IsBooked); err != nil {
			return nil, fmt.Errorf("%w: GetSlotsByIDs - scan slot: %v", ErrScanRow, err)
		}
		result[slot.ID] = &slot
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// SetSlotBooked выставляет флаг занятости слота
// Вызывается в одной транзакции с созданием/отменой бронирования
func (r *Repository) SetSlotBooked(ctx context.Context, id string, booked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_booked", booked).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetSlotBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError("SetSlotBooked - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetSlotBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// scanCourt сканирует строку результата в модель корта
func scanCourt(rows *sql.Rows) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&court.ID,
		&court.Name,
		&court.Location,
		&court.Description,
		&court.PricePerHour,
		&court.ImageURL,
		pq.Array(&court.Features),
		&court.Rating,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanCourt - scan row: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// wrapExecError классифицирует ошибку выполнения запроса
// Ошибки соединения и нехватки ресурсов помечаются как временные (ErrTransient),
// чтобы вызывающий слой мог их повторить
func wrapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57": // connection exception, insufficient resources, operator intervention
			return fmt.Errorf("%w: %s: %v", ErrTransient, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

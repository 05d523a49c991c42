package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

const completedPaymentIndex = "uq_payments_completed_booking"

// Repository репозиторий для работы с платежами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var paymentColumns = []string{
	"id",
	"booking_id",
	"user_id",
	"amount",
	"currency",
	"status",
	"payment_method",
	"created_at",
}

// Create записывает платёж
// Второй completed-платёж для того же бронирования упирается в частичный
// уникальный индекс и транслируется в ErrDuplicateCompleted - страховка
// идемпотентности реконсиляции
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"id",
			"booking_id",
			"user_id",
			"amount",
			"currency",
			"status",
			"payment_method",
		).
		Values(
			payment.ID,
			payment.BookingID,
			payment.UserID,
			payment.Amount,
			payment.Currency,
			payment.Status,
			payment.PaymentMethod,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err, completedPaymentIndex) {
			return nil, ErrDuplicateCompleted
		}
		return nil, wrapExecError("Create - execute insert", err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetCompletedByBookingID получает завершённый платёж бронирования
func (r *Repository) GetCompletedByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.PaymentCompleted,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompletedByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var payment domain.Payment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.PaymentMethod,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, wrapExecError("GetCompletedByBookingID - scan payment", err)
	}

	payment.CreatedAt = createdAt.Time

	return &payment, nil
}

// GetByUserID получает историю платежей пользователя
// Сортировка по времени создания по убыванию
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetByUserID - execute query", err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.UserID,
			&payment.Amount,
			&payment.Currency,
			&payment.Status,
			&payment.PaymentMethod,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// FailPendingByBookingID помечает незавершённые платежи бронирования как failed
// Возвращает количество затронутых строк; отсутствие pending-платежей не ошибка
func (r *Repository) FailPendingByBookingID(ctx context.Context, bookingID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", domain.PaymentFailed).
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.PaymentPending,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: FailPendingByBookingID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapExecError("FailPendingByBookingID - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: FailPendingByBookingID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// UpdateStatus обновляет статус платежа
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, completedPaymentIndex) {
			return ErrDuplicateCompleted
		}
		return wrapExecError("UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}

func wrapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return fmt.Errorf("%w: %s: %v", ErrTransient, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

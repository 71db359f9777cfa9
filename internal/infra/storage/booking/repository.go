package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/dbmetrics"
	"github.com/chefdechef/booking-service/pkg/psqlbuilder"
	"github.com/chefdechef/booking-service/pkg/types"
)

const (
	tableBookings = "bookings"

	// viewPublicDates представление без персональных данных: только дата и статус
	viewPublicDates = "public_booking_dates"

	// pgUniqueViolation код ошибки PostgreSQL unique_violation
	pgUniqueViolation = "23505"
)

// bookingColumns порядок колонок совпадает с scanBooking
var bookingColumns = []string{
	"id",
	"created_at",
	"event_date",
	"event_type",
	"location",
	"start_time",
	"name",
	"email",
	"phone",
	"notes",
	"status",
	"price",
	"prepayment",
	"payment_status",
	"currency",
	"notes_interne",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку; id и временные метки назначает БД
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"event_date",
			"event_type",
			"location",
			"start_time",
			"name",
			"email",
			"phone",
			"notes",
			"status",
			"currency",
		).
		Values(
			booking.EventDate,
			booking.EventType,
			booking.Location,
			booking.StartTime,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Notes,
			booking.Status,
			booking.Currency,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - event_date=%s", ErrDateTaken, booking.EventDate)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrScanRow, id, err)
	}

	return booking, nil
}

// List возвращает бронирования, отфильтрованные по строке поиска, дате и статусу.
// Сортировка выполняется сервисом; здесь порядок по дате создания.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings)

	// Поиск без учета регистра по имени, email или телефону
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	// Точное совпадение даты события
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"event_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListDateStatuses возвращает пары (дата, статус) из публичного представления.
// Персональные данные клиентов через этот запрос не читаются.
func (r *Repository) ListDateStatuses(ctx context.Context, statuses []domain.BookingStatus, from, to *types.Date) ([]domain.DateStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("event_date", "status").
		From(viewPublicDates)

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": values})
	}
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": *to})
	}

	query, args, err := selectBuilder.OrderBy("event_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateStatuses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateStatuses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.DateStatus, 0)
	for rows.Next() {
		var e domain.DateStatus
		if err := rows.Scan(&e.EventDate, &e.Status); err != nil {
			return nil, fmt.Errorf("%w: ListDateStatuses - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateStatuses - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// UpdateAdminFields применяет частичное обновление и возвращает строку в том виде,
// в каком она сохранена (UPDATE ... RETURNING).
// Условие по текущему статусу защищает от параллельного изменения:
// если строка не найдена или статус уже другой, возвращается ErrNoRowsUpdated.
func (r *Repository) UpdateAdminFields(ctx context.Context, id uuid.UUID, expected domain.BookingStatus, upd domain.BookingAdminUpdate) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("updated_at", squirrel.Expr("NOW()"))

	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}
	if upd.Price.Set {
		updateBuilder = updateBuilder.Set("price", upd.Price.Value)
	}
	if upd.Prepayment.Set {
		updateBuilder = updateBuilder.Set("prepayment", upd.Prepayment.Value)
	}
	if upd.PaymentStatus.Set {
		updateBuilder = updateBuilder.Set("payment_status", upd.PaymentStatus.Value)
	}
	if upd.Currency != nil {
		updateBuilder = updateBuilder.Set("currency", *upd.Currency)
	}
	if upd.InternalNotes.Set {
		updateBuilder = updateBuilder.Set("notes_interne", upd.InternalNotes.Value)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id, "status": expected}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateAdminFields - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%s", ErrNoRowsUpdated, id)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: UpdateAdminFields - id=%s", ErrDateTaken, id)
		}
		return nil, fmt.Errorf("%w: UpdateAdminFields - id=%s: %v", ErrExecQuery, id, err)
	}

	return booking, nil
}

// scanBooking сканирует строку в порядке bookingColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking       domain.Booking
		paymentStatus sql.NullString
		currency      sql.NullString
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.EventDate,
		&booking.EventType,
		&booking.Location,
		&booking.StartTime,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Notes,
		&booking.Status,
		&booking.Price,
		&booking.Prepayment,
		&paymentStatus,
		&currency,
		&booking.InternalNotes,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentStatus.Valid && paymentStatus.String != "" {
		ps := domain.PaymentStatus(paymentStatus.String)
		booking.PaymentStatus = &ps
	}

	booking.Currency = domain.DefaultCurrency
	if currency.Valid && currency.String != "" {
		booking.Currency = domain.Currency(currency.String)
	}

	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// escapeLike экранирует спецсимволы LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

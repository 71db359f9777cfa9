package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/dbmetrics"
	"github.com/chefdechef/booking-service/pkg/psqlbuilder"
)

// RecordsRepository читает контактные данные из bookings и contact_messages
// для производного (read-only) списка клиентов
type RecordsRepository struct {
	db DBExecutor
}

// NewRecordsRepository создает новый экземпляр репозитория
func NewRecordsRepository(db DBExecutor) *RecordsRepository {
	return &RecordsRepository{db: db}
}

// ListRecords возвращает записи обеих таблиц в порядке создания
func (r *RecordsRepository) ListRecords(ctx context.Context) ([]domain.ClientRecord, error) {
	bookings, err := r.list(ctx, "bookings", "NULL", domain.SourceBooking)
	if err != nil {
		return nil, err
	}
	contacts, err := r.list(ctx, "contact_messages", "message", domain.SourceContact)
	if err != nil {
		return nil, err
	}
	return append(bookings, contacts...), nil
}

func (r *RecordsRepository) list(ctx context.Context, table, messageColumn string, source domain.ClientSource) ([]domain.ClientRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name", "email", "phone", messageColumn, "created_at").
		From(table).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecords - build select query on %s: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecords - execute query on %s: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	records := make([]domain.ClientRecord, 0)
	for rows.Next() {
		var (
			rec                     domain.ClientRecord
			name, email, phone, msg sql.NullString
		)
		if err := rows.Scan(&name, &email, &phone, &msg, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecords - scan row from %s: %v", ErrScanRow, table, err)
		}
		rec.Name = name.String
		rec.Email = email.String
		rec.Phone = phone.String
		rec.Message = msg.String
		rec.Source = source
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecords - rows error on %s: %v", ErrScanRow, table, err)
	}

	return records, nil
}

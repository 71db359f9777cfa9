package client

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
)

const (
	tableClients = "clients"

	// pgUndefinedTable код ошибки PostgreSQL undefined_table
	pgUndefinedTable = "42P01"
)

var clientColumns = []string{
	"id",
	"name",
	"emails",
	"phones",
	"notes",
	"admin_notes",
	"last_message",
	"source",
	"created_at",
	"updated_at",
}

// Repository репозиторий таблицы clients (полный режим)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Probe проверяет наличие таблицы clients
func (r *Repository) Probe(ctx context.Context) error {
	query, args, err := psqlbuilder.Select("id").From(tableClients).Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Probe - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil, errors.Is(err, sql.ErrNoRows):
		return nil
	case IsUndefinedTable(err):
		return ErrTableMissing
	default:
		return fmt.Errorf("%w: Probe: %v", ErrExecQuery, err)
	}
}

// List возвращает всех клиентов
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From(tableClients).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From(tableClients).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrScanRow, id, err)
	}
	return c, nil
}

// GetByEmail ищет клиента по email (emails хранятся в нижнем регистре).
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(clientColumns...).
		From(tableClients).
		Where("? = ANY(emails)", domain.NormalizeEmail(email)).
		OrderBy("created_at ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: GetByEmail: %v", ErrScanRow, err)
	}
	return c, nil
}

// LockEmail берет транзакционную advisory-блокировку по нормализованному email.
// Параллельные upsert одного нового адреса выполняются по очереди, пока строки еще нет.
func (r *Repository) LockEmail(ctx context.Context, email string) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return ErrNotInTransaction
	}

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtext(?))", domain.NormalizeEmail(email))).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockEmail - build query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockEmail: %v", ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет нового клиента
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableClients).
		Columns("name", "emails", "phones", "notes", "admin_notes", "last_message", "source").
		Values(
			c.Name,
			pq.Array(c.Emails),
			pq.Array(c.Phones),
			c.Notes,
			c.AdminNotes,
			c.LastMessage,
			string(c.Source),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	c.ID = id.String()

	return c, nil
}

// Update перезаписывает изменяемые поля клиента и возвращает сохраненную строку
func (r *Repository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableClients).
		Set("name", c.Name).
		Set("emails", pq.Array(c.Emails)).
		Set("phones", pq.Array(c.Phones)).
		Set("notes", c.Notes).
		Set("admin_notes", c.AdminNotes).
		Set("last_message", c.LastMessage).
		Set("source", string(c.Source)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(clientColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: Update - id=%s: %v", ErrExecQuery, id, err)
	}
	return updated, nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableClients).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c                                    domain.Client
		id                                   uuid.UUID
		name, notes, adminNotes, lastMessage sql.NullString
		source                               sql.NullString
	)

	err := row.Scan(
		&id,
		&name,
		pq.Array(&c.Emails),
		pq.Array(&c.Phones),
		&notes,
		&adminNotes,
		&lastMessage,
		&source,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID = id.String()
	c.Name = name.String
	c.Notes = notes.String
	c.AdminNotes = adminNotes.String
	c.LastMessage = lastMessage.String
	c.Source = domain.ClientSource(source.String)
	return &c, nil
}

// IsUndefinedTable сообщает, что запрос упал из-за отсутствующей таблицы
func IsUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedTable
}

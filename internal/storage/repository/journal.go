package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/journal-service/internal/models"
)

const entryColumns = `id, title, content, category, entry_date, user_uid, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (*models.JournalEntry, error) {
	var e models.JournalEntry
	if err := row.Scan(&e.ID, &e.Title, &e.Content, &e.Category, &e.Date,
		&e.UserUID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntry вставляет новую запись дневника и возвращает её в сохранённом виде.
func (s *Storage) CreateEntry(ctx context.Context, entry models.JournalEntry) (*models.JournalEntry, error) {
	const op = "storage.CreateEntry"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO journal_entries (id, title, content, category, entry_date,
			      user_uid, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + entryColumns
	row := s.DB.QueryRowContext(ctx, query,
		entry.ID, entry.Title, entry.Content, entry.Category, entry.Date,
		entry.UserUID, entry.CreatedAt, entry.UpdatedAt)
	result, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return result, nil
}

// ReadEntry возвращает запись пользователя по её ID.
func (s *Storage) ReadEntry(ctx context.Context, id, userUID string) (*models.JournalEntry, error) {
	const op = "storage.ReadEntry"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + entryColumns + `
			  FROM journal_entries
			  WHERE id = $1 AND user_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userUID)
	result, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return result, nil
}

// UpdateEntry применяет частичное обновление записи: nil-поля остаются без изменений.
// Возвращает обновлённую запись или ErrNotFound, если id не принадлежит пользователю.
func (s *Storage) UpdateEntry(ctx context.Context, req models.UpdateEntry, id, userUID string) (*models.JournalEntry, error) {
	const op = "storage.UpdateEntry"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE journal_entries
			  SET title = COALESCE($1, title),
			      content = COALESCE($2, content),
			      category = COALESCE($3, category),
			      entry_date = COALESCE($4, entry_date),
			      updated_at = $5
			  WHERE id = $6 AND user_uid = $7
			  RETURNING ` + entryColumns
	row := s.DB.QueryRowContext(ctx, query,
		req.Title, req.Content, req.Category, req.Date, time.Now().UTC(), id, userUID)
	result, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return result, nil
}

// RemoveEntry удаляет запись пользователя по ID.
// Возвращает ErrNotFound, если запись не существует или принадлежит другому пользователю.
func (s *Storage) RemoveEntry(ctx context.Context, id, userUID string) error {
	const op = "storage.RemoveEntry"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM journal_entries WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListEntries возвращает все записи пользователя в порядке вставки.
func (s *Storage) ListEntries(ctx context.Context, userUID string) ([]*models.JournalEntry, error) {
	const op = "storage.ListEntries"
	return s.listEntries(ctx, op,
		`SELECT `+entryColumns+`
		 FROM journal_entries
		 WHERE user_uid = $1
		 ORDER BY created_at`, userUID)
}

// ListEntriesByCategory возвращает записи пользователя с данной категорией,
// сравнение категории выполняется без учёта регистра.
func (s *Storage) ListEntriesByCategory(ctx context.Context, userUID, category string) ([]*models.JournalEntry, error) {
	const op = "storage.ListEntriesByCategory"
	return s.listEntries(ctx, op,
		`SELECT `+entryColumns+`
		 FROM journal_entries
		 WHERE user_uid = $1 AND LOWER(category) = LOWER($2)
		 ORDER BY created_at`, userUID, category)
}

// ListEntriesByDateRange возвращает записи пользователя с датой в закрытом
// интервале [start, end], упорядоченные по дате, затем по времени создания.
func (s *Storage) ListEntriesByDateRange(ctx context.Context, userUID string, start, end time.Time) ([]*models.JournalEntry, error) {
	const op = "storage.ListEntriesByDateRange"
	return s.listEntries(ctx, op,
		`SELECT `+entryColumns+`
		 FROM journal_entries
		 WHERE user_uid = $1 AND entry_date BETWEEN $2 AND $3
		 ORDER BY entry_date, created_at`, userUID, start, end)
}

func (s *Storage) listEntries(ctx context.Context, op, query string, args ...any) ([]*models.JournalEntry, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.JournalEntry
	for rows.Next() {
		item, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

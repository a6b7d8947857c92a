package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/reliefops/finance/internal/entity"
)

func (r *Repository) CreateExpense(ctx context.Context, e entity.Expense) error {
	const q = `
	INSERT INTO expenses (
		id,
		doc_id,
		name,
		date,
		value,
		currency,
		comments,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		e.ID,
		e.DocID,
		e.Name,
		dateOrNil(e.Date),
		e.Value,
		zeronull.Text(e.Currency),
		zeronull.Text(e.Comments),
		e.CreatedBy,
		e.CreatedAt,
		e.ModifiedBy,
		e.ModifiedAt,
		e.Deleted,
	)

	return err
}

func (r *Repository) Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error) {
	q := selectExpense + " WHERE id = $1 AND NOT deleted"
	return scanExpense(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateExpense(ctx context.Context, e entity.Expense) error {
	const q = `
	UPDATE expenses SET
		name = $1,
		date = $2,
		value = $3,
		currency = $4,
		comments = $5,
		modified_by = $6,
		modified_at = $7
	WHERE id = $8 AND NOT deleted
	`

	result, err := r.db.Exec(
		ctx,
		q,
		e.Name,
		dateOrNil(e.Date),
		e.Value,
		zeronull.Text(e.Currency),
		zeronull.Text(e.Comments),
		e.ModifiedBy,
		e.ModifiedAt,
		e.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteExpense flags the record deleted, keeping the row.
func (r *Repository) DeleteExpense(ctx context.Context, id, by uuid.UUID, at time.Time) error {
	const q = `UPDATE expenses SET deleted = TRUE, modified_by = $1, modified_at = $2 WHERE id = $3 AND NOT deleted`

	result, err := r.db.Exec(ctx, q, by, at, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Expenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error) {
	stmt := sq.Select(
		"id",
		"doc_id",
		"name",
		"date",
		"value",
		"currency",
		"comments",
		"created_by",
		"created_at",
		"modified_by",
		"modified_at",
		"deleted",
		"COUNT(*) OVER() AS total_count",
	).From("expenses").Where("NOT deleted").PlaceholderFormat(sq.Dollar)

	stmt = applyExpenseFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	expenses := make([]entity.Expense, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var (
			e     entity.Expense
			date  *time.Time
			count int
		)

		err = rows.Scan(
			&e.ID,
			&e.DocID,
			&e.Name,
			&date,
			&e.Value,
			(*zeronull.Text)(&e.Currency),
			(*zeronull.Text)(&e.Comments),
			&e.CreatedBy,
			&e.CreatedAt,
			&e.ModifiedBy,
			&e.ModifiedAt,
			&e.Deleted,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		if date != nil {
			e.Date = *date
		}

		totalCount = count

		expenses = append(expenses, e)
	}

	return expenses, totalCount, nil
}

func applyExpenseFilter(stmt sq.SelectBuilder, f entity.ExpenseFilter) sq.SelectBuilder {
	if f.Name != nil {
		stmt = stmt.Where(sq.ILike{"name": "%" + *f.Name + "%"})
	}

	if f.Currency != nil {
		stmt = stmt.Where(sq.Eq{"currency": *f.Currency})
	}

	if f.DateFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"date": *f.DateFrom})
	}

	return stmt
}

func scanExpense(row pgx.Row) (e entity.Expense, err error) {
	var date *time.Time

	err = row.Scan(
		&e.ID,
		&e.DocID,
		&e.Name,
		&date,
		&e.Value,
		(*zeronull.Text)(&e.Currency),
		(*zeronull.Text)(&e.Comments),
		&e.CreatedBy,
		&e.CreatedAt,
		&e.ModifiedBy,
		&e.ModifiedAt,
		&e.Deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Expense{}, entity.ErrNotFound
		}

		return entity.Expense{}, err
	}

	if date != nil {
		e.Date = *date
	}

	return e, nil
}

func dateOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

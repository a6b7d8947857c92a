package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/reliefops/finance/internal/entity"
)

func (r *Repository) CreateOrganisation(ctx context.Context, o entity.Organisation) error {
	const q = `
	INSERT INTO organisations (
		id,
		name,
		acronym,
		website,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		o.ID,
		o.Name,
		zeronull.Text(o.Acronym),
		zeronull.Text(o.Website),
		o.CreatedBy,
		o.CreatedAt,
		o.ModifiedBy,
		o.ModifiedAt,
		o.Deleted,
	)

	return err
}

func (r *Repository) Organisation(ctx context.Context, id uuid.UUID) (entity.Organisation, error) {
	q := selectOrganisation + " WHERE id = $1 AND NOT deleted"
	return scanOrganisation(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) OrganisationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM organisations WHERE id = $1 AND NOT deleted)`

	var exists bool

	err := r.db.QueryRow(ctx, q, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Organisations(ctx context.Context, f entity.OrganisationFilter) ([]entity.Organisation, int, error) {
	stmt := sq.Select(
		"id",
		"name",
		"acronym",
		"website",
		"created_by",
		"created_at",
		"modified_by",
		"modified_at",
		"deleted",
		"COUNT(*) OVER() AS total_count",
	).From("organisations").Where("NOT deleted").PlaceholderFormat(sq.Dollar)

	if f.Name != nil {
		stmt = stmt.Where(sq.ILike{"name": "%" + *f.Name + "%"})
	}

	stmt = stmt.
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy("name asc")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orgs := make([]entity.Organisation, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var (
			o     entity.Organisation
			count int
		)

		err = rows.Scan(
			&o.ID,
			&o.Name,
			(*zeronull.Text)(&o.Acronym),
			(*zeronull.Text)(&o.Website),
			&o.CreatedBy,
			&o.CreatedAt,
			&o.ModifiedBy,
			&o.ModifiedAt,
			&o.Deleted,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		orgs = append(orgs, o)
	}

	return orgs, totalCount, nil
}

func scanOrganisation(row pgx.Row) (o entity.Organisation, err error) {
	err = row.Scan(
		&o.ID,
		&o.Name,
		(*zeronull.Text)(&o.Acronym),
		(*zeronull.Text)(&o.Website),
		&o.CreatedBy,
		&o.CreatedAt,
		&o.ModifiedBy,
		&o.ModifiedAt,
		&o.Deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Organisation{}, entity.ErrNotFound
		}

		return entity.Organisation{}, err
	}

	return o, nil
}

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

func (r *Repository) CreatePaymentService(ctx context.Context, s entity.PaymentService) error {
	const q = `
	INSERT INTO payment_services (
		id,
		name,
		organisation_id,
		api_type,
		base_url,
		use_proxy,
		proxy,
		username,
		password,
		token_type,
		access_token,
		token_expiry,
		created_by,
		created_at,
		modified_by,
		modified_at,
		deleted
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.Name,
		s.OrganisationID,
		s.APIType,
		zeronull.Text(s.BaseURL),
		s.UseProxy,
		zeronull.Text(s.Proxy),
		zeronull.Text(s.Username),
		zeronull.Text(s.Password),
		zeronull.Text(s.TokenType),
		zeronull.Text(s.AccessToken),
		s.TokenExpiry,
		s.CreatedBy,
		s.CreatedAt,
		s.ModifiedBy,
		s.ModifiedAt,
		s.Deleted,
	)

	return err
}

func (r *Repository) PaymentService(ctx context.Context, id uuid.UUID) (entity.PaymentService, error) {
	q := selectService + " WHERE id = $1 AND NOT deleted"
	return scanService(r.db.QueryRow(ctx, q, id))
}

// UpdatePaymentService updates the writable fields of a service. The token
// bookkeeping columns are owned by the integration process and are left
// untouched here.
func (r *Repository) UpdatePaymentService(ctx context.Context, s entity.PaymentService) error {
	const q = `
	UPDATE payment_services SET
		name = $1,
		organisation_id = $2,
		api_type = $3,
		base_url = $4,
		use_proxy = $5,
		proxy = $6,
		username = $7,
		password = $8,
		modified_by = $9,
		modified_at = $10
	WHERE id = $11 AND NOT deleted
	`

	result, err := r.db.Exec(
		ctx,
		q,
		s.Name,
		s.OrganisationID,
		s.APIType,
		zeronull.Text(s.BaseURL),
		s.UseProxy,
		zeronull.Text(s.Proxy),
		zeronull.Text(s.Username),
		zeronull.Text(s.Password),
		s.ModifiedBy,
		s.ModifiedAt,
		s.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePaymentService(ctx context.Context, id, by uuid.UUID, at time.Time) error {
	const q = `UPDATE payment_services SET deleted = TRUE, modified_by = $1, modified_at = $2 WHERE id = $3 AND NOT deleted`

	result, err := r.db.Exec(ctx, q, by, at, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// UpdateServiceToken stores the OAuth token bookkeeping written by the
// external integration.
func (r *Repository) UpdateServiceToken(ctx context.Context, id uuid.UUID, token entity.ServiceToken, at time.Time) error {
	const q = `
	UPDATE payment_services SET
		token_type = $1,
		access_token = $2,
		token_expiry = $3,
		modified_at = $4
	WHERE id = $5 AND NOT deleted
	`

	result, err := r.db.Exec(
		ctx,
		q,
		zeronull.Text(token.TokenType),
		zeronull.Text(token.AccessToken),
		token.Expiry,
		at,
		id,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ClearExpiredTokens drops access tokens whose expiry has passed.
func (r *Repository) ClearExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	const q = `
	UPDATE payment_services SET
		access_token = NULL,
		token_type = NULL
	WHERE token_expiry < $1 AND access_token IS NOT NULL
	`

	result, err := r.db.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *Repository) PaymentServices(ctx context.Context, f entity.ServiceFilter) ([]entity.PaymentService, int, error) {
	stmt := sq.Select(
		"id",
		"name",
		"organisation_id",
		"api_type",
		"base_url",
		"use_proxy",
		"proxy",
		"username",
		"password",
		"token_type",
		"access_token",
		"token_expiry",
		"created_by",
		"created_at",
		"modified_by",
		"modified_at",
		"deleted",
		"COUNT(*) OVER() AS total_count",
	).From("payment_services").Where("NOT deleted").PlaceholderFormat(sq.Dollar)

	stmt = applyServiceFilter(stmt, f).
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

	services := make([]entity.PaymentService, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var (
			s     entity.PaymentService
			count int
		)

		err = rows.Scan(
			&s.ID,
			&s.Name,
			&s.OrganisationID,
			&s.APIType,
			(*zeronull.Text)(&s.BaseURL),
			&s.UseProxy,
			(*zeronull.Text)(&s.Proxy),
			(*zeronull.Text)(&s.Username),
			(*zeronull.Text)(&s.Password),
			(*zeronull.Text)(&s.TokenType),
			(*zeronull.Text)(&s.AccessToken),
			&s.TokenExpiry,
			&s.CreatedBy,
			&s.CreatedAt,
			&s.ModifiedBy,
			&s.ModifiedAt,
			&s.Deleted,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		services = append(services, s)
	}

	return services, totalCount, nil
}

func applyServiceFilter(stmt sq.SelectBuilder, f entity.ServiceFilter) sq.SelectBuilder {
	if f.Name != nil {
		stmt = stmt.Where(sq.ILike{"name": "%" + *f.Name + "%"})
	}

	if f.OrganisationID != nil {
		stmt = stmt.Where(sq.Eq{"organisation_id": *f.OrganisationID})
	}

	if f.APIType != nil {
		stmt = stmt.Where(sq.Eq{"api_type": *f.APIType})
	}

	return stmt
}

func scanService(row pgx.Row) (s entity.PaymentService, err error) {
	err = row.Scan(
		&s.ID,
		&s.Name,
		&s.OrganisationID,
		&s.APIType,
		(*zeronull.Text)(&s.BaseURL),
		&s.UseProxy,
		(*zeronull.Text)(&s.Proxy),
		(*zeronull.Text)(&s.Username),
		(*zeronull.Text)(&s.Password),
		(*zeronull.Text)(&s.TokenType),
		(*zeronull.Text)(&s.AccessToken),
		&s.TokenExpiry,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.ModifiedBy,
		&s.ModifiedAt,
		&s.Deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PaymentService{}, entity.ErrNotFound
		}

		return entity.PaymentService{}, err
	}

	return s, nil
}

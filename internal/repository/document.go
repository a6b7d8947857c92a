package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/reliefops/finance/internal/entity"
)

func (r *Repository) CreateDocument(ctx context.Context, d entity.Document) error {
	const q = `
	INSERT INTO documents (
		id,
		doc_id,
		name,
		file_url,
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
		d.ID,
		d.DocID,
		d.Name,
		d.FileURL,
		d.CreatedBy,
		d.CreatedAt,
		d.ModifiedBy,
		d.ModifiedAt,
		d.Deleted,
	)

	return err
}

// Documents returns the attachments linked to a document-entity handle.
func (r *Repository) Documents(ctx context.Context, docID uuid.UUID) (docs []entity.Document, err error) {
	q := selectDocument + " WHERE doc_id = $1 AND NOT deleted ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, docID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var d entity.Document

		err = rows.Scan(
			&d.ID,
			&d.DocID,
			&d.Name,
			&d.FileURL,
			&d.CreatedBy,
			&d.CreatedAt,
			&d.ModifiedBy,
			&d.ModifiedAt,
			&d.Deleted,
		)
		if err != nil {
			return nil, err
		}

		docs = append(docs, d)
	}

	return docs, nil
}

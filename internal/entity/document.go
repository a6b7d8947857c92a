package entity

import (
	"github.com/gofrs/uuid/v5"
)

// Document is an attachment linked to a record through its doc_id handle.
// Any table can own a handle, so heterogeneous records share one attachment
// mechanism.
type Document struct {
	ID      uuid.UUID
	DocID   uuid.UUID
	Name    string
	FileURL string
	RecordMeta
}

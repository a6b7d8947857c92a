package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// RecordMeta is the audit metadata carried by every table. Records are never
// removed physically: deletion sets the Deleted flag and all read paths
// exclude flagged rows.
type RecordMeta struct {
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	ModifiedBy uuid.UUID
	ModifiedAt time.Time
	Deleted    bool
}

type RecordAction string

const (
	RecordCreated RecordAction = "created"
	RecordUpdated RecordAction = "updated"
	RecordDeleted RecordAction = "deleted"
)

func (a RecordAction) String() string {
	return string(a)
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Organisation struct {
	ID      uuid.UUID
	Name    string
	Acronym string
	Website string
	RecordMeta
}

type OrganisationFilter struct {
	Name  *string
	Page  uint64
	Limit uint64
}

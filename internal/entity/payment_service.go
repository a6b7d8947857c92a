package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type APIType string

const (
	APITypePayPal APIType = "PAYPAL"
)

var apiTypeLabels = map[APIType]string{
	APITypePayPal: "PayPal",
}

func (t APIType) String() string {
	return string(t)
}

func (t APIType) Validate() error {
	if _, ok := apiTypeLabels[t]; !ok {
		return fmt.Errorf("%w: unknown api type %q", ErrInvalidArgument, t)
	}

	return nil
}

// Represent returns the display label for the API type.
func (t APIType) Represent() string {
	if label, ok := apiTypeLabels[t]; ok {
		return label
	}

	return string(t)
}

// APITypeOptions returns the enumerated API types with display labels.
func APITypeOptions() map[string]string {
	options := make(map[string]string, len(apiTypeLabels))
	for k, v := range apiTypeLabels {
		options[k.String()] = v
	}

	return options
}

// PaymentService is a configured payment API endpoint owned by an
// organisation. The token fields are bookkeeping for an external OAuth
// integration and are not writable through the public CRUD surface.
type PaymentService struct {
	ID             uuid.UUID
	Name           string
	OrganisationID uuid.UUID
	APIType        APIType
	BaseURL        string
	UseProxy       bool
	Proxy          string
	Username       string // client ID
	Password       string // client secret
	TokenType      string
	AccessToken    string
	TokenExpiry    *time.Time
	RecordMeta
}

// ServiceToken is the OAuth bookkeeping written by the integration process.
type ServiceToken struct {
	TokenType   string
	AccessToken string
	Expiry      *time.Time
}

type ServiceFilter struct {
	Name           *string
	OrganisationID *uuid.UUID
	APIType        *string
	Page           uint64
	Limit          uint64
	SortBy         ServiceSortCol
	OrderBy        OrderByCol
}

type ServiceSortCol string

func (c ServiceSortCol) String() string {
	return string(c)
}

const (
	ServiceSortByName      ServiceSortCol = "name"
	ServiceSortByCreatedAt ServiceSortCol = "created_at"
)

func (c ServiceSortCol) IsValid() bool {
	switch c {
	case ServiceSortByName, ServiceSortByCreatedAt:
		return true
	}

	return false
}

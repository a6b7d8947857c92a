package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/reliefops/finance/internal/entity"
)

func ValidateExpense(e entity.Expense) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if len(e.Name) > entity.ExpenseNameMaxLen {
		return fmt.Errorf("%w: name exceeds %d characters", entity.ErrInvalidArgument, entity.ExpenseNameMaxLen)
	}

	if e.Currency != "" && len(e.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code, got %q", entity.ErrInvalidArgument, e.Currency)
	}

	return nil
}

func ValidatePaymentService(s entity.PaymentService) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if s.OrganisationID.IsNil() {
		return fmt.Errorf("%w: organisation is required", entity.ErrInvalidArgument)
	}

	return s.APIType.Validate()
}

func ValidateDocument(d entity.Document) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if !govalidator.IsURL(d.FileURL) {
		return fmt.Errorf("%w: invalid file url %q", entity.ErrInvalidArgument, d.FileURL)
	}

	return nil
}

func ValidateOrganisation(o entity.Organisation) error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if o.Website != "" && !govalidator.IsURL(o.Website) {
		return fmt.Errorf("%w: invalid website %q", entity.ErrInvalidArgument, o.Website)
	}

	return nil
}

// NormalizeBaseURL validates a service base URL, prepending https:// to bare
// domains. Only http and https schemes are accepted.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base url %q", entity.ErrInvalidArgument, raw)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: base url scheme must be http or https, got %q", entity.ErrInvalidArgument, u.Scheme)
	}

	// A bare word is not a usable endpoint even with a scheme prepended.
	if host := u.Hostname(); host != "localhost" && !strings.Contains(host, ".") {
		return "", fmt.Errorf("%w: invalid base url host %q", entity.ErrInvalidArgument, host)
	}

	if !govalidator.IsURL(raw) {
		return "", fmt.Errorf("%w: invalid base url %q", entity.ErrInvalidArgument, raw)
	}

	return raw, nil
}

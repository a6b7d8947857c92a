package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/reliefops/finance/internal/entity"
	"github.com/reliefops/finance/internal/schema"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateExpense(ctx context.Context, e entity.Expense) error
	Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error)
	Expenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.Expense, int, error)
	UpdateExpense(ctx context.Context, e entity.Expense) error
	DeleteExpense(ctx context.Context, id, by uuid.UUID, at time.Time) error

	CreateDocument(ctx context.Context, d entity.Document) error
	Documents(ctx context.Context, docID uuid.UUID) ([]entity.Document, error)

	CreatePaymentService(ctx context.Context, s entity.PaymentService) error
	PaymentService(ctx context.Context, id uuid.UUID) (entity.PaymentService, error)
	PaymentServices(ctx context.Context, filter entity.ServiceFilter) ([]entity.PaymentService, int, error)
	UpdatePaymentService(ctx context.Context, s entity.PaymentService) error
	DeletePaymentService(ctx context.Context, id, by uuid.UUID, at time.Time) error
	UpdateServiceToken(ctx context.Context, id uuid.UUID, token entity.ServiceToken, at time.Time) error
	ClearExpiredTokens(ctx context.Context, before time.Time) (int64, error)

	CreateOrganisation(ctx context.Context, o entity.Organisation) error
	Organisation(ctx context.Context, id uuid.UUID) (entity.Organisation, error)
	Organisations(ctx context.Context, filter entity.OrganisationFilter) ([]entity.Organisation, int, error)
	OrganisationExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Producer interface {
	RecordEvent(ctx context.Context, table string, recordID uuid.UUID, action string)
}

type Service struct {
	repo            Repository
	producer        Producer
	defaultCurrency string
}

func New(repo Repository, producer Producer, defaultCurrency string) *Service {
	return &Service{
		repo:            repo,
		producer:        producer,
		defaultCurrency: defaultCurrency,
	}
}

func (s *Service) CreateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Expense{}, err
	}

	if e.Currency == "" {
		e.Currency = s.defaultCurrency
	}

	err = ValidateExpense(e)
	if err != nil {
		return entity.Expense{}, err
	}

	now := time.Now()

	e.ID = uuid.Must(uuid.NewV4())
	e.DocID = uuid.Must(uuid.NewV4())
	e.RecordMeta = entity.RecordMeta{
		CreatedBy:  user.ID,
		CreatedAt:  now,
		ModifiedBy: user.ID,
		ModifiedAt: now,
	}

	err = s.repo.CreateExpense(ctx, e)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	s.producer.RecordEvent(ctx, schema.TableExpense, e.ID, entity.RecordCreated.String())

	return e, nil
}

func (s *Service) Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error) {
	return s.repo.Expense(ctx, id)
}

func (s *Service) Expenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.Expense, int, error) {
	return s.repo.Expenses(ctx, filter)
}

func (s *Service) UpdateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Expense{}, err
	}

	existing, err := s.repo.Expense(ctx, e.ID)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("get expense %q: %w", e.ID, err)
	}

	if e.Currency == "" {
		e.Currency = s.defaultCurrency
	}

	err = ValidateExpense(e)
	if err != nil {
		return entity.Expense{}, err
	}

	e.DocID = existing.DocID
	e.RecordMeta = existing.RecordMeta
	e.ModifiedBy = user.ID
	e.ModifiedAt = time.Now()

	err = s.repo.UpdateExpense(ctx, e)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("update expense %q: %w", e.ID, err)
	}

	s.producer.RecordEvent(ctx, schema.TableExpense, e.ID, entity.RecordUpdated.String())

	return e, nil
}

// DeleteExpense marks the expense deleted. The row stays for the audit trail.
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.repo.DeleteExpense(ctx, id, user.ID, time.Now())
	if err != nil {
		return fmt.Errorf("delete expense %q: %w", id, err)
	}

	s.producer.RecordEvent(ctx, schema.TableExpense, id, entity.RecordDeleted.String())

	return nil
}

// AttachDocument links an attachment to the expense through its doc handle.
func (s *Service) AttachDocument(ctx context.Context, expenseID uuid.UUID, d entity.Document) (entity.Document, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Document{}, err
	}

	expense, err := s.repo.Expense(ctx, expenseID)
	if err != nil {
		return entity.Document{}, fmt.Errorf("get expense %q: %w", expenseID, err)
	}

	err = ValidateDocument(d)
	if err != nil {
		return entity.Document{}, err
	}

	now := time.Now()

	d.ID = uuid.Must(uuid.NewV4())
	d.DocID = expense.DocID
	d.RecordMeta = entity.RecordMeta{
		CreatedBy:  user.ID,
		CreatedAt:  now,
		ModifiedBy: user.ID,
		ModifiedAt: now,
	}

	err = s.repo.CreateDocument(ctx, d)
	if err != nil {
		return entity.Document{}, fmt.Errorf("create document: %w", err)
	}

	s.producer.RecordEvent(ctx, "documents", d.ID, entity.RecordCreated.String())

	return d, nil
}

func (s *Service) ExpenseDocuments(ctx context.Context, expenseID uuid.UUID) ([]entity.Document, error) {
	expense, err := s.repo.Expense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("get expense %q: %w", expenseID, err)
	}

	return s.repo.Documents(ctx, expense.DocID)
}

func (s *Service) CreatePaymentService(ctx context.Context, ps entity.PaymentService) (entity.PaymentService, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.PaymentService{}, err
	}

	if ps.APIType == "" {
		ps.APIType = entity.APITypePayPal
	}

	ps.BaseURL, err = NormalizeBaseURL(ps.BaseURL)
	if err != nil {
		return entity.PaymentService{}, err
	}

	err = ValidatePaymentService(ps)
	if err != nil {
		return entity.PaymentService{}, err
	}

	exists, err := s.repo.OrganisationExists(ctx, ps.OrganisationID)
	if err != nil {
		return entity.PaymentService{}, fmt.Errorf("check organisation %q: %w", ps.OrganisationID, err)
	}

	if !exists {
		return entity.PaymentService{}, fmt.Errorf("%w: organisation %q does not exist",
			entity.ErrInvalidArgument, ps.OrganisationID)
	}

	now := time.Now()

	ps.ID = uuid.Must(uuid.NewV4())
	// Token bookkeeping belongs to the integration process, never to CRUD input.
	ps.TokenType = ""
	ps.AccessToken = ""
	ps.TokenExpiry = nil
	ps.RecordMeta = entity.RecordMeta{
		CreatedBy:  user.ID,
		CreatedAt:  now,
		ModifiedBy: user.ID,
		ModifiedAt: now,
	}

	err = s.repo.CreatePaymentService(ctx, ps)
	if err != nil {
		return entity.PaymentService{}, fmt.Errorf("create payment service: %w", err)
	}

	s.producer.RecordEvent(ctx, schema.TablePaymentService, ps.ID, entity.RecordCreated.String())

	return ps, nil
}

func (s *Service) PaymentService(ctx context.Context, id uuid.UUID) (entity.PaymentService, error) {
	return s.repo.PaymentService(ctx, id)
}

func (s *Service) PaymentServices(ctx context.Context, filter entity.ServiceFilter) ([]entity.PaymentService, int, error) {
	return s.repo.PaymentServices(ctx, filter)
}

func (s *Service) UpdatePaymentService(ctx context.Context, ps entity.PaymentService) (entity.PaymentService, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.PaymentService{}, err
	}

	existing, err := s.repo.PaymentService(ctx, ps.ID)
	if err != nil {
		return entity.PaymentService{}, fmt.Errorf("get payment service %q: %w", ps.ID, err)
	}

	if ps.APIType == "" {
		ps.APIType = existing.APIType
	}

	ps.BaseURL, err = NormalizeBaseURL(ps.BaseURL)
	if err != nil {
		return entity.PaymentService{}, err
	}

	err = ValidatePaymentService(ps)
	if err != nil {
		return entity.PaymentService{}, err
	}

	exists, err := s.repo.OrganisationExists(ctx, ps.OrganisationID)
	if err != nil {
		return entity.PaymentService{}, fmt.Errorf("check organisation %q: %w", ps.OrganisationID, err)
	}

	if !exists {
		return entity.PaymentService{}, fmt.Errorf("%w: organisation %q does not exist",
			entity.ErrInvalidArgument, ps.OrganisationID)
	}

	// Write-protected fields keep their stored values.
	ps.TokenType = existing.TokenType
	ps.AccessToken = existing.AccessToken
	ps.TokenExpiry = existing.TokenExpiry
	ps.RecordMeta = existing.RecordMeta
	ps.ModifiedBy = user.ID
	ps.ModifiedAt = time.Now()

	err = s.repo.UpdatePaymentService(ctx, ps)
	if err != nil {
		return entity.PaymentService{}, fmt.Errorf("update payment service %q: %w", ps.ID, err)
	}

	s.producer.RecordEvent(ctx, schema.TablePaymentService, ps.ID, entity.RecordUpdated.String())

	return ps, nil
}

func (s *Service) DeletePaymentService(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.repo.DeletePaymentService(ctx, id, user.ID, time.Now())
	if err != nil {
		return fmt.Errorf("delete payment service %q: %w", id, err)
	}

	s.producer.RecordEvent(ctx, schema.TablePaymentService, id, entity.RecordDeleted.String())

	return nil
}

// UpdateServiceToken stores token bookkeeping on behalf of the external OAuth
// integration. Token acquisition and refresh happen outside this service.
func (s *Service) UpdateServiceToken(ctx context.Context, id uuid.UUID, token entity.ServiceToken) error {
	err := s.repo.UpdateServiceToken(ctx, id, token, time.Now())
	if err != nil {
		return fmt.Errorf("update token for payment service %q: %w", id, err)
	}

	s.producer.RecordEvent(ctx, schema.TablePaymentService, id, entity.RecordUpdated.String())

	return nil
}

// ExpireTokens clears access tokens past their expiry. Registered as a
// background job.
func (s *Service) ExpireTokens(ctx context.Context) error {
	n, err := s.repo.ClearExpiredTokens(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("clear expired tokens: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "cleared expired service tokens", "count", n)
	}

	return nil
}

func (s *Service) CreateOrganisation(ctx context.Context, o entity.Organisation) (entity.Organisation, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Organisation{}, err
	}

	err = ValidateOrganisation(o)
	if err != nil {
		return entity.Organisation{}, err
	}

	now := time.Now()

	o.ID = uuid.Must(uuid.NewV4())
	o.RecordMeta = entity.RecordMeta{
		CreatedBy:  user.ID,
		CreatedAt:  now,
		ModifiedBy: user.ID,
		ModifiedAt: now,
	}

	err = s.repo.CreateOrganisation(ctx, o)
	if err != nil {
		return entity.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}

	s.producer.RecordEvent(ctx, "organisations", o.ID, entity.RecordCreated.String())

	return o, nil
}

func (s *Service) Organisation(ctx context.Context, id uuid.UUID) (entity.Organisation, error) {
	return s.repo.Organisation(ctx, id)
}

func (s *Service) Organisations(ctx context.Context, filter entity.OrganisationFilter) ([]entity.Organisation, int, error) {
	return s.repo.Organisations(ctx, filter)
}

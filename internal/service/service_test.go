package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reliefops/finance/internal/entity"
	"github.com/reliefops/finance/internal/mocks"
	"github.com/reliefops/finance/internal/service"
)

func testUser() entity.User {
	return entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test first name",
		LastName:  "Test last name",
		Email:     "user@example.com",
		Role:      entity.RoleStaff,
	}
}

func TestService_CreateExpense(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	var created entity.Expense

	repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.Expense) error {
			created = e
			return nil
		})
	producer.EXPECT().RecordEvent(gomock.Any(), "expenses", gomock.Any(), "created")

	s := service.New(repo, producer, "EUR")

	got, err := s.CreateExpense(ctx, entity.Expense{
		Name:  "Water trucking",
		Value: decimal.RequireFromString("1500.25"),
	})
	require.NoError(t, err)

	require.Equal(t, created, got)
	require.False(t, got.ID.IsNil())
	require.False(t, got.DocID.IsNil())
	require.Equal(t, "EUR", got.Currency)
	require.Equal(t, user.ID, got.CreatedBy)
	require.Equal(t, user.ID, got.ModifiedBy)
	require.False(t, got.CreatedAt.IsZero())
}

func TestService_CreateExpense_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer, "EUR")

	_, err := s.CreateExpense(context.Background(), entity.Expense{
		Name:  "Water trucking",
		Value: decimal.RequireFromString("1500.25"),
	})
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_UpdateExpense_KeepsDocHandle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	existing := entity.Expense{
		ID:       uuid.Must(uuid.NewV4()),
		DocID:    uuid.Must(uuid.NewV4()),
		Name:     "Water trucking",
		Value:    decimal.RequireFromString("1500.25"),
		Currency: "EUR",
		RecordMeta: entity.RecordMeta{
			CreatedBy:  uuid.Must(uuid.NewV4()),
			CreatedAt:  time.Now().Add(-time.Hour),
			ModifiedBy: uuid.Must(uuid.NewV4()),
			ModifiedAt: time.Now().Add(-time.Hour),
		},
	}

	repo.EXPECT().Expense(gomock.Any(), existing.ID).Return(existing, nil)

	var updated entity.Expense

	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.Expense) error {
			updated = e
			return nil
		})
	producer.EXPECT().RecordEvent(gomock.Any(), "expenses", existing.ID, "updated")

	s := service.New(repo, producer, "EUR")

	_, err := s.UpdateExpense(ctx, entity.Expense{
		ID:    existing.ID,
		Name:  "Water trucking phase 2",
		Value: decimal.RequireFromString("2000.00"),
	})
	require.NoError(t, err)

	require.Equal(t, existing.DocID, updated.DocID)
	require.Equal(t, existing.CreatedBy, updated.CreatedBy)
	require.Equal(t, user.ID, updated.ModifiedBy)
}

func TestService_AttachDocument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	expense := entity.Expense{
		ID:    uuid.Must(uuid.NewV4()),
		DocID: uuid.Must(uuid.NewV4()),
	}

	repo.EXPECT().Expense(gomock.Any(), expense.ID).Return(expense, nil)

	var created entity.Document

	repo.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d entity.Document) error {
			created = d
			return nil
		})
	producer.EXPECT().RecordEvent(gomock.Any(), "documents", gomock.Any(), "created")

	s := service.New(repo, producer, "EUR")

	got, err := s.AttachDocument(ctx, expense.ID, entity.Document{
		Name:    "Invoice scan",
		FileURL: "https://files.example.com/invoice.pdf",
	})
	require.NoError(t, err)

	require.Equal(t, expense.DocID, created.DocID)
	require.Equal(t, created, got)
}

func TestService_CreatePaymentService_ClearsTokenFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	orgID := uuid.Must(uuid.NewV4())
	expiry := time.Now().Add(time.Hour)

	repo.EXPECT().OrganisationExists(gomock.Any(), orgID).Return(true, nil)

	var created entity.PaymentService

	repo.EXPECT().CreatePaymentService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ps entity.PaymentService) error {
			created = ps
			return nil
		})
	producer.EXPECT().RecordEvent(gomock.Any(), "payment_services", gomock.Any(), "created")

	s := service.New(repo, producer, "EUR")

	got, err := s.CreatePaymentService(ctx, entity.PaymentService{
		Name:           "HQ PayPal",
		OrganisationID: orgID,
		BaseURL:        "api.paypal.com",
		TokenType:      "Bearer",
		AccessToken:    "sneaked-in",
		TokenExpiry:    &expiry,
	})
	require.NoError(t, err)

	require.Equal(t, entity.APITypePayPal, got.APIType)
	require.Equal(t, "https://api.paypal.com", got.BaseURL)
	require.Empty(t, created.TokenType)
	require.Empty(t, created.AccessToken)
	require.Nil(t, created.TokenExpiry)
}

func TestService_CreatePaymentService_UnknownOrganisation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := entity.CtxWithUser(context.Background(), testUser())
	orgID := uuid.Must(uuid.NewV4())

	repo.EXPECT().OrganisationExists(gomock.Any(), orgID).Return(false, nil)

	s := service.New(repo, producer, "EUR")

	_, err := s.CreatePaymentService(ctx, entity.PaymentService{
		Name:           "HQ PayPal",
		OrganisationID: orgID,
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdatePaymentService_PreservesTokenFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	expiry := time.Now().Add(time.Hour)

	existing := entity.PaymentService{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           "HQ PayPal",
		OrganisationID: uuid.Must(uuid.NewV4()),
		APIType:        entity.APITypePayPal,
		TokenType:      "Bearer",
		AccessToken:    "stored-token",
		TokenExpiry:    &expiry,
	}

	repo.EXPECT().PaymentService(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().OrganisationExists(gomock.Any(), existing.OrganisationID).Return(true, nil)

	var updated entity.PaymentService

	repo.EXPECT().UpdatePaymentService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ps entity.PaymentService) error {
			updated = ps
			return nil
		})
	producer.EXPECT().RecordEvent(gomock.Any(), "payment_services", existing.ID, "updated")

	s := service.New(repo, producer, "EUR")

	_, err := s.UpdatePaymentService(ctx, entity.PaymentService{
		ID:             existing.ID,
		Name:           "HQ PayPal renamed",
		OrganisationID: existing.OrganisationID,
		TokenType:      "",
		AccessToken:    "overwrite-attempt",
	})
	require.NoError(t, err)

	require.Equal(t, "stored-token", updated.AccessToken)
	require.Equal(t, "Bearer", updated.TokenType)
	require.Equal(t, &expiry, updated.TokenExpiry)
	require.Equal(t, "HQ PayPal renamed", updated.Name)
}

func TestService_UpdateServiceToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	id := uuid.Must(uuid.NewV4())
	expiry := time.Now().Add(time.Hour)
	token := entity.ServiceToken{
		TokenType:   "Bearer",
		AccessToken: "fresh-token",
		Expiry:      &expiry,
	}

	repo.EXPECT().UpdateServiceToken(gomock.Any(), id, token, gomock.Any()).Return(nil)
	producer.EXPECT().RecordEvent(gomock.Any(), "payment_services", id, "updated")

	s := service.New(repo, producer, "EUR")

	err := s.UpdateServiceToken(context.Background(), id, token)
	require.NoError(t, err)
}

func TestService_ExpireTokens(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	repo.EXPECT().ClearExpiredTokens(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	s := service.New(repo, producer, "EUR")

	err := s.ExpireTokens(context.Background())
	require.NoError(t, err)
}

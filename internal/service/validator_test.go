package service_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/reliefops/finance/internal/entity"
	"github.com/reliefops/finance/internal/service"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "empty", in: "", want: ""},
		{name: "full https url", in: "https://api.paypal.com/v2", want: "https://api.paypal.com/v2"},
		{name: "http url kept", in: "http://api.sandbox.paypal.com", want: "http://api.sandbox.paypal.com"},
		{name: "bare domain gets https", in: "api.paypal.com", want: "https://api.paypal.com"},
		{name: "localhost with port", in: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "surrounding spaces", in: "  api.paypal.com ", want: "https://api.paypal.com"},
		{name: "bare word", in: "not-a-url", wantErr: true},
		{name: "ftp scheme", in: "ftp://files.example.com", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := service.NormalizeBaseURL(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateExpense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expense entity.Expense
		wantErr bool
	}{
		{
			name:    "valid",
			expense: entity.Expense{Name: "Water trucking", Value: decimal.RequireFromString("10.50"), Currency: "EUR"},
		},
		{
			name:    "no currency is fine",
			expense: entity.Expense{Name: "Water trucking", Value: decimal.RequireFromString("10.50")},
		},
		{
			name:    "empty name",
			expense: entity.Expense{Name: "  ", Value: decimal.RequireFromString("10.50")},
			wantErr: true,
		},
		{
			name:    "name too long",
			expense: entity.Expense{Name: strings.Repeat("x", entity.ExpenseNameMaxLen+1)},
			wantErr: true,
		},
		{
			name:    "bad currency",
			expense: entity.Expense{Name: "Water trucking", Currency: "EURO"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateExpense(tt.expense)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	err := service.ValidateDocument(entity.Document{Name: "Invoice scan", FileURL: "https://files.example.com/a.pdf"})
	require.NoError(t, err)

	err = service.ValidateDocument(entity.Document{Name: "Invoice scan", FileURL: "not a url"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	err = service.ValidateDocument(entity.Document{Name: "", FileURL: "https://files.example.com/a.pdf"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestValidatePaymentService(t *testing.T) {
	t.Parallel()

	err := service.ValidatePaymentService(entity.PaymentService{Name: "HQ PayPal"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

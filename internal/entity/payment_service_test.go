package entity_test

import (
	"errors"
	"testing"

	"github.com/reliefops/finance/internal/entity"
)

func TestAPIType_Validate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		apiType entity.APIType
		wantErr bool
	}{
		{
			name:    "paypal",
			apiType: entity.APITypePayPal,
			wantErr: false,
		},
		{
			name:    "unknown value",
			apiType: entity.APIType("STRIPE"),
			wantErr: true,
		},
		{
			name:    "lowercase is not accepted",
			apiType: entity.APIType("paypal"),
			wantErr: true,
		},
		{
			name:    "empty",
			apiType: entity.APIType(""),
			wantErr: true,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.apiType.Validate()
			if tt.wantErr {
				if !errors.Is(err, entity.ErrInvalidArgument) {
					t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
				}

				return
			}

			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestAPIType_Represent(t *testing.T) {
	t.Parallel()

	if got := entity.APITypePayPal.Represent(); got != "PayPal" {
		t.Errorf("Represent() = %q, want %q", got, "PayPal")
	}
}

func TestUser_Represent(t *testing.T) {
	t.Parallel()

	u := entity.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	if got := u.Represent(); got != "Ada Lovelace" {
		t.Errorf("Represent() = %q, want %q", got, "Ada Lovelace")
	}

	u = entity.User{Email: "ada@example.com"}
	if got := u.Represent(); got != "ada@example.com" {
		t.Errorf("Represent() = %q, want %q", got, "ada@example.com")
	}
}

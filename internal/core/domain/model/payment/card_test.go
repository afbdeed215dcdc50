package payment_test

import (
	"testing"

	"domicilios/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardDetails(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		holder  string
		cvv     string
		wantErr bool
	}{
		{"valid plain", "4111111111111111", "Laura Gómez", "123", false},
		{"valid with spaces and dashes", "4111 1111-1111 1111", "Laura Gómez", "123", false},
		{"minimum length 13", "4111111111111", "Laura Gómez", "123", false},
		{"maximum length 19", "4111111111111111111", "Laura Gómez", "123", false},
		{"too short", "411111111111", "Laura Gómez", "123", true},
		{"too long", "41111111111111111111", "Laura Gómez", "123", true},
		{"non-digit number", "4111abcd11111111", "Laura Gómez", "123", true},
		{"holder too short", "4111111111111111", "LG", "123", true},
		{"holder whitespace only", "4111111111111111", "   ", "123", true},
		{"cvv too short", "4111111111111111", "Laura Gómez", "12", true},
		{"cvv too long", "4111111111111111", "Laura Gómez", "1234", true},
		{"cvv non-digit", "4111111111111111", "Laura Gómez", "12a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := payment.NewCardDetails(tt.number, tt.holder, tt.cvv)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, card.Validate())
		})
	}
}

func TestNewCardDetails_StripsFormatting(t *testing.T) {
	card, err := payment.NewCardDetails("4111 1111-1111 1111", "Laura Gómez", "123")
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", card.Number())
}

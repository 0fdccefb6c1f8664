package bill

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseEntry_ShouldParseValidBill(t *testing.T) {
	b, err := ParseEntry("Monthly, Rent , $1200.50, 1")

	require.NoError(t, err)
	assert.Equal(t, Monthly, b.Frequency)
	assert.Equal(t, "Rent", b.Merchant)
	assert.True(t, decimal.RequireFromString("1200.5").Equal(b.Amount))
	assert.Equal(t, 1, b.DueDay)
}

func Test_ParseEntry_ShouldAcceptFrequencyAliases(t *testing.T) {
	for _, in := range []string{"bi-weekly", "biweekly", "2 weeks"} {
		b, err := ParseEntry(in + ", Gym, 20, 3")
		require.NoError(t, err, in)
		assert.Equal(t, Biweekly, b.Frequency, in)
	}
}

func Test_ParseEntry_ShouldRejectInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"too few parts", "monthly, Rent, 1200", ErrEntryFormat},
		{"too many parts", "monthly, Rent, 1200, 1, extra", ErrEntryFormat},
		{"unknown frequency", "yearly, Rent, 1200, 1", ErrUnknownFrequency},
		{"bad amount", "monthly, Rent, lots, 1", ErrInvalidAmount},
		{"negative amount", "monthly, Rent, -5, 1", ErrNegativeAmount},
		{"bad day", "monthly, Rent, 5, first", ErrInvalidDueDay},
		{"day too big", "monthly, Rent, 5, 32", ErrDueDayOutOfRange},
		{"day zero", "monthly, Rent, 5, 0", ErrDueDayOutOfRange},
		{"empty merchant", "monthly, , 5, 1", ErrEmptyMerchant},
		{"semicolon in merchant", "monthly, Rent; flat 2, 1200, 1", ErrReservedMerchant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(tt.text)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func Test_FormatAmount(t *testing.T) {
	assert.Equal(t, "5.0", FormatAmount(decimal.RequireFromString("5.00")))
	assert.Equal(t, "1200.0", FormatAmount(decimal.NewFromInt(1200)))
	assert.Equal(t, "12.5", FormatAmount(decimal.RequireFromString("12.50")))
	assert.Equal(t, "0.99", FormatAmount(decimal.RequireFromString("0.99")))
}

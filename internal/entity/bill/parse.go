package bill

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const entryParts = 4

var (
	ErrEntryFormat   = errors.New("entry must be 'frequency, merchant, amount, due day'")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDueDay = errors.New("invalid due day")
)

// ParseEntry parses a bill typed as "frequency, merchant, amount, due day",
// for example "monthly, Rent, $1200, 1".
func ParseEntry(text string) (Bill, error) {
	parts := strings.Split(text, ",")
	if len(parts) != entryParts {
		return Bill{}, ErrEntryFormat
	}

	freq, err := ParseFrequency(parts[0])
	if err != nil {
		return Bill{}, err
	}

	amount, err := ParseAmount(parts[2])
	if err != nil {
		return Bill{}, err
	}

	dueDay, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return Bill{}, errors.Wrap(ErrInvalidDueDay, err.Error())
	}

	b := Bill{
		Frequency: freq,
		Merchant:  strings.TrimSpace(parts[1]),
		Amount:    amount,
		DueDay:    dueDay,
	}
	if err = b.Validate(); err != nil {
		return Bill{}, err
	}
	return b, nil
}

// ParseAmount accepts a decimal with an optional leading currency sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(ErrInvalidAmount, err.Error())
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return amount, nil
}

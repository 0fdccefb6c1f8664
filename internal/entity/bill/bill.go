package bill

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

const (
	MinDueDay = 1
	MaxDueDay = 31
)

// reservedMerchantChars separates bills in the flat file and cannot be
// stored inside a merchant name.
const reservedMerchantChars = ";"

var (
	ErrUnknownFrequency = errors.New("unknown bill frequency")
	ErrEmptyMerchant    = errors.New("empty merchant")
	ErrNegativeAmount   = errors.New("negative amount")
	ErrDueDayOutOfRange = errors.New("due day out of range")
	ErrReservedMerchant = errors.New("merchant contains ';'")
)

type Frequency string

// frequencyAliases maps user input to frequencies. "2 weeks" is what the
// pay frequency prompt offers, so it is accepted for bills too.
var frequencyAliases = map[string]Frequency{
	"weekly":    Weekly,
	"week":      Weekly,
	"biweekly":  Biweekly,
	"bi-weekly": Biweekly,
	"2 weeks":   Biweekly,
	"monthly":   Monthly,
	"month":     Monthly,
}

func ParseFrequency(s string) (Frequency, error) {
	f, ok := frequencyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.Wrap(ErrUnknownFrequency, s)
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Biweekly, Monthly:
		return true
	}
	return false
}

type Bill struct {
	Frequency Frequency
	Merchant  string
	Amount    decimal.Decimal
	DueDay    int
}

func (b Bill) Validate() error {
	if !b.Frequency.Valid() {
		return errors.Wrap(ErrUnknownFrequency, string(b.Frequency))
	}
	if strings.TrimSpace(b.Merchant) == "" {
		return ErrEmptyMerchant
	}
	if strings.ContainsAny(b.Merchant, reservedMerchantChars) {
		return ErrReservedMerchant
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if b.DueDay < MinDueDay || b.DueDay > MaxDueDay {
		return ErrDueDayOutOfRange
	}
	return nil
}

// FormatAmount renders an amount the way bills have always been shown to
// users: trailing zeros trimmed, but at least one fractional digit ("5.0").
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (b Bill) String() string {
	return fmt.Sprintf("%s - $%s due on day %d (%s)", b.Merchant, FormatAmount(b.Amount), b.DueDay, b.Frequency)
}

package user

import (
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/bills-bot/internal/entity/bill"
)

const (
	PayWeekly   PayFrequency = "week"
	PayBiweekly PayFrequency = "2 weeks"
	PayMonthly  PayFrequency = "monthly"
)

var (
	ErrUnknownPayFrequency = errors.New("unknown pay frequency")
	ErrUnknownWeekday      = errors.New("unknown weekday")
)

type PayFrequency string

var payFrequencyAliases = map[string]PayFrequency{
	"week":      PayWeekly,
	"weekly":    PayWeekly,
	"2 weeks":   PayBiweekly,
	"biweekly":  PayBiweekly,
	"bi-weekly": PayBiweekly,
	"monthly":   PayMonthly,
}

func ParsePayFrequency(s string) (PayFrequency, error) {
	f, ok := payFrequencyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownPayFrequency
	}
	return f, nil
}

type Weekday string

var Weekdays = []Weekday{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrUnknownWeekday
}

type Profile struct {
	ID           int64
	Name         string
	PayFrequency PayFrequency
	Payday       Weekday
	Bills        []bill.Bill
}

func NewProfile(id int64) Profile {
	return Profile{ID: id, Bills: make([]bill.Bill, 0)}
}

// HasPaySchedule reports whether both pay frequency and payday are known.
func (p *Profile) HasPaySchedule() bool {
	return p.PayFrequency != "" && p.Payday != ""
}

func (p *Profile) AddBill(b bill.Bill) {
	p.Bills = append(p.Bills, b)
}

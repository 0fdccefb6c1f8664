package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/recurrence"
)

const (
	DefaultLookaheadDays = 14
	isoDateLayout        = "2006-01-02"
)

type Kind string

const (
	NoBills        Kind = "no_bills"
	Upcoming       Kind = "upcoming"
	RemainingMonth Kind = "remaining_month"
	NoneDueSoon    Kind = "none_due_soon"
)

const (
	noBillsMessage        = "You have no bills set up."
	upcomingMessage       = "You have the following bills coming up:"
	remainingMonthMessage = "You have no bills coming up in the next %d days. Here are your remaining bills for the month:"
	noneDueSoonMessage    = "You have no bills for the remaining month."
	skippedMessage        = "Skipped (due day does not exist this month): %s"
)

type Report struct {
	Kind          Kind
	Lines         []string
	Skipped       []string
	LookaheadDays int
}

// Text renders the report as a chat message.
func (r Report) Text() string {
	var res []string
	switch r.Kind {
	case NoBills:
		return noBillsMessage
	case Upcoming:
		res = append([]string{upcomingMessage}, r.Lines...)
	case RemainingMonth:
		res = append([]string{fmt.Sprintf(remainingMonthMessage, r.LookaheadDays)}, r.Lines...)
	default:
		res = []string{noneDueSoonMessage}
	}
	if len(r.Skipped) > 0 {
		res = append(res, "", fmt.Sprintf(skippedMessage, strings.Join(r.Skipped, ", ")))
	}
	return strings.Join(res, "\n")
}

type resolver interface {
	NextOccurrence(b bill.Bill, reference time.Time) (time.Time, error)
}

type Summarizer struct {
	resolver      resolver
	lookaheadDays int
}

type config interface {
	LookaheadDays() int
}

func NewSummarizer(config config, resolver resolver) *Summarizer {
	// zero keeps only bills due on the reference day
	days := config.LookaheadDays()
	if days < 0 {
		days = DefaultLookaheadDays
	}
	return &Summarizer{resolver: resolver, lookaheadDays: days}
}

func (s *Summarizer) LookaheadDays() int {
	return s.lookaheadDays
}

// Summarize splits bills into those due within the lookahead window and
// those still due later this month. The second group is only reported when
// the first one is empty.
func (s *Summarizer) Summarize(bills []bill.Bill, reference time.Time) (Report, error) {
	report := Report{LookaheadDays: s.lookaheadDays}
	if len(bills) == 0 {
		report.Kind = NoBills
		return report, nil
	}

	ref := recurrence.Day(reference)
	horizon := ref.AddDate(0, 0, s.lookaheadDays)

	var upcoming, remaining []string
	for _, b := range bills {
		due, err := s.resolver.NextOccurrence(b, ref)
		if errors.Is(err, recurrence.ErrInvalidDate) {
			logger.Info("skip bill", zap.String("merchant", b.Merchant), zap.Error(err))
			report.Skipped = append(report.Skipped, b.Merchant)
			continue
		}
		if err != nil {
			return Report{}, errors.Wrap(err, "summarize")
		}

		line := formatLine(b, due)
		if !due.After(horizon) {
			upcoming = append(upcoming, line)
		}
		if sameMonth(due, ref) && !due.Before(ref) {
			remaining = append(remaining, line)
		}
	}

	switch {
	case len(upcoming) > 0:
		report.Kind, report.Lines = Upcoming, upcoming
	case len(remaining) > 0:
		report.Kind, report.Lines = RemainingMonth, remaining
	default:
		report.Kind = NoneDueSoon
	}
	return report, nil
}

func formatLine(b bill.Bill, due time.Time) string {
	return fmt.Sprintf("%s - $%s due on %s", b.Merchant, bill.FormatAmount(b.Amount), due.Format(isoDateLayout))
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

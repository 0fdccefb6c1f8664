package recurrence

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/bills-bot/internal/entity/bill"
)

const (
	weekStep     = 7
	biweekStep   = 14
	approxMonth  = 30
	firstOfMonth = 1
)

var (
	ErrInvalidDate      = errors.New("due day does not exist in month")
	ErrInvalidFrequency = errors.New("invalid bill frequency")
)

// DayPolicy decides what happens when a due day does not exist in a month,
// e.g. 31 in April.
type DayPolicy string

const (
	DayClamp  DayPolicy = "clamp"
	DayReject DayPolicy = "reject"
)

// MonthAdvance decides how a passed monthly bill moves to its next month.
type MonthAdvance string

const (
	// AdvanceApproximate adds 30 days and re-anchors the day of month, so
	// the result drifts across months of different lengths.
	AdvanceApproximate MonthAdvance = "approximate"
	AdvanceCalendar    MonthAdvance = "calendar"
)

type Resolver struct {
	dayPolicy    DayPolicy
	monthAdvance MonthAdvance
}

type config interface {
	DayPolicy() string
	MonthAdvance() string
}

func NewResolver(config config) (*Resolver, error) {
	return newResolver(DayPolicy(config.DayPolicy()), MonthAdvance(config.MonthAdvance()))
}

// Default clamps short months and keeps the approximate month advance.
func Default() *Resolver {
	return &Resolver{dayPolicy: DayClamp, monthAdvance: AdvanceApproximate}
}

func newResolver(policy DayPolicy, advance MonthAdvance) (*Resolver, error) {
	if policy == "" {
		policy = DayClamp
	}
	if advance == "" {
		advance = AdvanceApproximate
	}
	if policy != DayClamp && policy != DayReject {
		return nil, errors.Errorf("unknown day policy %q", policy)
	}
	if advance != AdvanceApproximate && advance != AdvanceCalendar {
		return nil, errors.Errorf("unknown month advance %q", advance)
	}
	return &Resolver{dayPolicy: policy, monthAdvance: advance}, nil
}

// NextOccurrence returns the first date on or after reference that matches
// the bill's recurrence rule. Only the calendar date of reference is used.
func (r *Resolver) NextOccurrence(b bill.Bill, reference time.Time) (time.Time, error) {
	if !b.Frequency.Valid() {
		return time.Time{}, errors.Wrapf(ErrInvalidFrequency, "%q", b.Frequency)
	}
	ref := Day(reference)
	if b.DueDay < bill.MinDueDay || b.DueDay > bill.MaxDueDay {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "day %d", b.DueDay)
	}

	switch b.Frequency {
	case bill.Monthly:
		return r.nextMonthly(b.DueDay, ref)
	case bill.Weekly:
		return r.nextStepped(b.DueDay, ref, weekStep)
	default:
		return r.nextStepped(b.DueDay, ref, biweekStep)
	}
}

func (r *Resolver) nextMonthly(dueDay int, ref time.Time) (time.Time, error) {
	due, err := r.anchor(ref, dueDay)
	if err != nil {
		return time.Time{}, err
	}
	if !due.Before(ref) {
		return due, nil
	}

	next := time.Date(ref.Year(), ref.Month()+1, firstOfMonth, 0, 0, 0, 0, ref.Location())
	if r.monthAdvance == AdvanceCalendar {
		return r.anchor(next, dueDay)
	}

	due, err = r.anchor(due.AddDate(0, 0, approxMonth), dueDay)
	if err != nil {
		return time.Time{}, err
	}
	// day 1 of a 31-day month re-anchors into the same month
	if due.Before(ref) {
		return r.anchor(next, dueDay)
	}
	return due, nil
}

func (r *Resolver) nextStepped(dueDay int, ref time.Time, step int) (time.Time, error) {
	due, err := r.anchor(ref, dueDay)
	if err != nil {
		return time.Time{}, err
	}
	for due.Before(ref) {
		due = due.AddDate(0, 0, step)
	}
	return due, nil
}

// anchor puts dueDay into the month of t, applying the day policy.
func (r *Resolver) anchor(t time.Time, dueDay int) (time.Time, error) {
	last := now.With(t).EndOfMonth().Day()
	if dueDay > last {
		if r.dayPolicy == DayReject {
			return time.Time{}, errors.Wrapf(ErrInvalidDate, "day %d in %s %d", dueDay, t.Month(), t.Year())
		}
		dueDay = last
	}
	return time.Date(t.Year(), t.Month(), dueDay, 0, 0, 0, 0, t.Location()), nil
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

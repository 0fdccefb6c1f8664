package recurrence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/bills-bot/internal/entity/bill"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBill(freq bill.Frequency, dueDay int) bill.Bill {
	return bill.Bill{Frequency: freq, Merchant: "Test", Amount: decimal.NewFromInt(10), DueDay: dueDay}
}

func mustResolver(t *testing.T, policy DayPolicy, advance MonthAdvance) *Resolver {
	r, err := newResolver(policy, advance)
	require.NoError(t, err)
	return r
}

func Test_NextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		bill bill.Bill
		ref  time.Time
		want time.Time
	}{
		{"monthly not yet passed", newBill(bill.Monthly, 20), date(2024, 6, 10), date(2024, 6, 20)},
		{"monthly due today", newBill(bill.Monthly, 20), date(2024, 6, 20), date(2024, 6, 20)},
		{"monthly passed moves to next month", newBill(bill.Monthly, 1), date(2024, 6, 20), date(2024, 7, 1)},
		{"monthly day one in a 31-day month", newBill(bill.Monthly, 1), date(2024, 1, 15), date(2024, 2, 1)},
		{"monthly passed in december", newBill(bill.Monthly, 5), date(2024, 12, 10), date(2025, 1, 5)},
		{"monthly approximate advance drifts past february", newBill(bill.Monthly, 30), date(2023, 1, 31), date(2023, 3, 30)},
		{"monthly clamps short month", newBill(bill.Monthly, 31), date(2024, 2, 10), date(2024, 2, 29)},
		{"monthly clamps re-anchor", newBill(bill.Monthly, 29), date(2023, 1, 30), date(2023, 2, 28)},
		{"weekly anchor ahead", newBill(bill.Weekly, 20), date(2024, 6, 10), date(2024, 6, 20)},
		{"weekly steps past reference", newBill(bill.Weekly, 1), date(2024, 6, 20), date(2024, 6, 22)},
		{"weekly lands on reference", newBill(bill.Weekly, 6), date(2024, 6, 20), date(2024, 6, 20)},
		{"weekly crosses month", newBill(bill.Weekly, 1), date(2024, 6, 30), date(2024, 7, 6)},
		{"biweekly steps past reference", newBill(bill.Biweekly, 1), date(2024, 6, 20), date(2024, 6, 29)},
		{"biweekly crosses month", newBill(bill.Biweekly, 3), date(2024, 6, 30), date(2024, 7, 1)},
		{"biweekly clamps anchor", newBill(bill.Biweekly, 31), date(2024, 4, 2), date(2024, 4, 30)},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.NextOccurrence(tt.bill, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_NextOccurrence_ShouldIgnoreTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 6, 20, 18, 45, 0, 0, time.UTC)

	got, err := Default().NextOccurrence(newBill(bill.Monthly, 20), ref)

	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 20), got)
}

func Test_NextOccurrence_ShouldKeepReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ref := time.Date(2024, 6, 10, 1, 0, 0, 0, loc)

	got, err := Default().NextOccurrence(newBill(bill.Weekly, 12), ref)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, loc), got)
}

func Test_NextOccurrence_CalendarAdvance(t *testing.T) {
	r := mustResolver(t, DayClamp, AdvanceCalendar)

	got, err := r.NextOccurrence(newBill(bill.Monthly, 30), date(2023, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2023, 2, 28), got)

	got, err = r.NextOccurrence(newBill(bill.Monthly, 1), date(2024, 6, 20))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 7, 1), got)
}

func Test_NextOccurrence_RejectPolicy(t *testing.T) {
	r := mustResolver(t, DayReject, AdvanceApproximate)

	_, err := r.NextOccurrence(newBill(bill.Monthly, 31), date(2024, 2, 10))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = r.NextOccurrence(newBill(bill.Weekly, 31), date(2024, 4, 1))
	assert.ErrorIs(t, err, ErrInvalidDate)

	// re-anchoring into February fails too
	_, err = r.NextOccurrence(newBill(bill.Monthly, 29), date(2023, 1, 30))
	assert.ErrorIs(t, err, ErrInvalidDate)

	got, err := r.NextOccurrence(newBill(bill.Monthly, 31), date(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 31), got)
}

func Test_NextOccurrence_ShouldFailOnInvalidInput(t *testing.T) {
	r := Default()

	_, err := r.NextOccurrence(newBill("yearly", 1), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = r.NextOccurrence(newBill(bill.Monthly, 0), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = r.NextOccurrence(newBill(bill.Monthly, 32), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func Test_NewResolver_ShouldRejectUnknownSettings(t *testing.T) {
	_, err := newResolver("round", AdvanceApproximate)
	assert.Error(t, err)

	_, err = newResolver(DayClamp, "lunar")
	assert.Error(t, err)

	r, err := newResolver("", "")
	require.NoError(t, err)
	assert.Equal(t, DayClamp, r.dayPolicy)
	assert.Equal(t, AdvanceApproximate, r.monthAdvance)
}

func Test_NextOccurrence_Properties(t *testing.T) {
	r := Default()
	start := date(2023, 12, 1)

	for ref := start; ref.Year() < 2025; ref = ref.AddDate(0, 0, 1) {
		for day := bill.MinDueDay; day <= bill.MaxDueDay; day++ {
			anchor, err := r.anchor(ref, day)
			require.NoError(t, err)

			monthly, err := r.NextOccurrence(newBill(bill.Monthly, day), ref)
			require.NoError(t, err)
			assert.False(t, monthly.Before(ref))
			if anchor.Before(ref) {
				assert.True(t, monthly.After(endOfMonth(ref)), "ref %s day %d", ref, day)
			} else {
				assert.Equal(t, anchor, monthly)
			}

			for freq, step := range map[bill.Frequency]int{bill.Weekly: weekStep, bill.Biweekly: biweekStep} {
				got, err := r.NextOccurrence(newBill(freq, day), ref)
				require.NoError(t, err)
				assert.False(t, got.Before(ref))

				diff := int(got.Sub(anchor).Hours()) / 24
				assert.Zero(t, diff%step, "ref %s day %d %s", ref, day, freq)
				if got.After(anchor) {
					assert.True(t, got.AddDate(0, 0, -step).Before(ref))
				}
			}
		}
	}
}

func endOfMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())
}

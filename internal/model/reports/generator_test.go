package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/model/recurrence"
	"max.ks1230/bills-bot/internal/model/reports/mock"
	"max.ks1230/bills-bot/internal/model/storage"
	"max.ks1230/bills-bot/internal/model/summary"
)

type testConfig struct{}

func (testConfig) Location() *time.Location {
	return time.UTC
}

func (testConfig) LookaheadDays() int {
	return summary.DefaultLookaheadDays
}

func newTestGenerator(store profileStorage) *Generator {
	g := NewGenerator(testConfig{}, store, summary.NewSummarizer(testConfig{}, recurrence.Default()))
	g.now = func() time.Time {
		return time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	}
	return g
}

func profileWithBills(bills ...bill.Bill) user.Profile {
	p := user.NewProfile(123)
	p.Name = "Max"
	p.Bills = bills
	return p
}

func Test_OnGenerateReport_ShouldReturnUpcomingBills(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.
		GetProfileMock.
		Inspect(func(_ context.Context, id int64) {
			assert.Equal(m, int64(123), id)
		}).
		Return(profileWithBills(
			bill.Bill{Frequency: bill.Monthly, Merchant: "Rent", Amount: decimal.NewFromInt(1200), DueDay: 1},
			bill.Bill{Frequency: bill.Monthly, Merchant: "Phone", Amount: decimal.NewFromInt(40), DueDay: 15},
		), nil)

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{UserID: 123, Source: digest.SourceCommand})

	assert.True(m, report.Success())
	assert.Equal(m, int64(123), report.UserID)
	assert.Equal(m, string(summary.Upcoming), report.Kind)
	assert.Equal(m, "You have the following bills coming up:\nPhone - $40.0 due on 2024-06-15", report.Text)
}

func Test_OnGenerateReport_ShouldUseRequestedReferenceDate(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.GetProfileMock.Return(profileWithBills(
		bill.Bill{Frequency: bill.Monthly, Merchant: "Phone", Amount: decimal.NewFromInt(40), DueDay: 29},
	), nil)

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{
		UserID:        123,
		ReferenceDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Source:        digest.SourceCommand,
	})

	assert.True(m, report.Success())
	assert.Equal(m, string(summary.RemainingMonth), report.Kind)
	assert.Equal(m, "You have no bills coming up in the next 14 days. Here are your remaining bills for the month:\n"+
		"Phone - $40.0 due on 2024-06-29", report.Text)
}

func Test_OnGenerateReport_WithoutProfile_ShouldReportNoBills(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.GetProfileMock.Return(user.Profile{}, storage.ErrNotFound)

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{UserID: 123, Source: digest.SourceCommand})

	assert.True(m, report.Success())
	assert.Equal(m, string(summary.NoBills), report.Kind)
	assert.Equal(m, "You have no bills set up.", report.Text)
}

func Test_OnScheduledReport_WithoutBills_ShouldStayQuiet(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.GetProfileMock.Return(profileWithBills(), nil)

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{UserID: 123, Source: digest.SourceSchedule})

	assert.True(m, report.Success())
	assert.Equal(m, string(summary.NoBills), report.Kind)
	assert.Empty(m, report.Text)
}

func Test_OnStorageFailure_ShouldReturnFailedReport(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.GetProfileMock.Return(user.Profile{}, errors.New("connection refused"))

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{UserID: 123, Source: digest.SourceSchedule})

	assert.False(m, report.Success())
	assert.Equal(m, int64(123), report.UserID)
	assert.Contains(m, report.Error, "connection refused")
}

func Test_OnInvalidFrequency_ShouldReturnFailedReport(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewProfileStorageMock(m)

	store.GetProfileMock.Return(profileWithBills(
		bill.Bill{Frequency: "yearly", Merchant: "Insurance", Amount: decimal.NewFromInt(300), DueDay: 3},
	), nil)

	generator := newTestGenerator(store)
	report := generator.GenerateReport(ctx, digest.Request{UserID: 123, Source: digest.SourceCommand})

	assert.False(m, report.Success())
	assert.Empty(m, report.Text)
}

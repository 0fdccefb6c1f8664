package messages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/clients/cache"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/model/messages/mock"
	"max.ks1230/bills-bot/internal/model/storage"
)

const testUserID = int64(123)

func savedProfile(t *testing.T, store *storage.InMemStorage, bills ...bill.Bill) {
	p := user.NewProfile(testUserID)
	p.Name = "Max"
	p.PayFrequency = user.PayBiweekly
	p.Payday = user.Weekday("friday")
	require.NoError(t, store.SaveProfile(context.Background(), p))
	for _, b := range bills {
		require.NoError(t, store.AddBill(context.Background(), testUserID, b))
	}
}

func rent() bill.Bill {
	return bill.Bill{
		Frequency: bill.Monthly,
		Merchant:  "Rent",
		Amount:    decimal.NewFromInt(1200),
		DueDay:    20,
	}
}

func Test_OnFullDialog_ShouldFinishWithSummary(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	handler := newTestHandler(store, cache.Nop{}, mock.NewDigestRequesterMock(m))
	ctx := context.Background()

	steps := []struct {
		text string
		want string
	}{
		{"/start", "Let's set up your bills! What's your name?"},
		{"Max", "Hi Max! Do you get paid every week, every 2 weeks, or monthly? (type 'week', '2 weeks', or 'monthly')"},
		{"every day", "Please type 'week', '2 weeks', or 'monthly' only."},
		{"2 weeks", "What day of the week do you get paid on? (e.g., Monday, Tuesday)"},
		{"friday", "Would you like to add any bills? (type 'yes' or 'no')"},
		{"yes", "Enter the bill frequency (weekly, bi-weekly, or monthly), merchant name, amount, and due date (day of the month, e.g., 15). Type 'done' when you are finished."},
		{"monthly, Rent, 1200, 20", "Bill added: Rent - $1200.0 due on day 20 (monthly)"},
		{"yearly, Gym, 30, 5", "Please use weekly, bi-weekly, or monthly for the bill frequency."},
		{"done", "Here's a summary of your bills:\nYou have the following bills coming up:\nRent - $1200.0 due on 2024-06-20"},
	}
	for _, step := range steps {
		got, err := handler.HandleMessage(ctx, step.text, testUserID)
		require.NoError(t, err, step.text)
		assert.Equal(t, step.want, got, step.text)
	}

	p, err := store.GetProfile(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Max", p.Name)
	assert.Equal(t, user.PayBiweekly, p.PayFrequency)
	require.Len(t, p.Bills, 1)
	assert.Equal(t, "Rent", p.Bills[0].Merchant)
}

func Test_OnTextWithoutDialog_ShouldSuggestStart(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, mock.NewDigestRequesterMock(m))

	got, err := handler.HandleMessage(context.Background(), "hello there", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, loveToTalkMessage, got)
}

func Test_OnBillsCommand_ShouldServeCachedReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	reports := mock.NewReportCacheMock(m)
	handler := newTestHandler(storage.NewInMemStorage(), reports, mock.NewDigestRequesterMock(m))

	reports.GetReportMock.Expect(testUserID, "bills:2024-06-10").Return("from cache", nil)

	got, err := handler.HandleMessage(context.Background(), "/bills", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "from cache", got)
}

func Test_OnBillsCommand_ShouldSummarizeAndCacheOnMiss(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	savedProfile(t, store, rent())
	reports := mock.NewReportCacheMock(m)
	handler := newTestHandler(store, reports, mock.NewDigestRequesterMock(m))

	want := "You have the following bills coming up:\nRent - $1200.0 due on 2024-06-20"
	reports.GetReportMock.Expect(testUserID, "bills:2024-06-10").Return("", cache.ErrMiss)
	reports.CacheReportMock.Expect(testUserID, "bills:2024-06-10", want).Return(nil)

	got, err := handler.HandleMessage(context.Background(), "/bills", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_OnBillsCommand_ShouldTolerateCacheFailures(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	savedProfile(t, store)
	reports := mock.NewReportCacheMock(m)
	handler := newTestHandler(store, reports, mock.NewDigestRequesterMock(m))

	reports.GetReportMock.Return("", errors.New("memcached is down"))
	reports.CacheReportMock.Return(errors.New("memcached is down"))

	got, err := handler.HandleMessage(context.Background(), "/bills", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "You have no bills set up.", got)
}

func Test_OnBillsCommand_WithoutProfile_ShouldSuggestStart(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, mock.NewDigestRequesterMock(m))

	got, err := handler.HandleMessage(context.Background(), "/bills", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, noProfileMessage, got)
}

func Test_OnBillAdded_ShouldInvalidateCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	savedProfile(t, store)
	reports := mock.NewReportCacheMock(m)
	handler := newTestHandler(store, reports, mock.NewDigestRequesterMock(m))
	ctx := context.Background()

	reports.InvalidateCacheMock.Expect(testUserID, []string{"bills:2024-06-10"}).Return(nil)

	for _, text := range []string{"/start", "Max", "yes", "weekly, Gym, 15.50, 3"} {
		_, err := handler.HandleMessage(ctx, text, testUserID)
		require.NoError(t, err, text)
	}

	assert.Equal(t, uint64(1), reports.InvalidateCacheAfterCounter())
}

func Test_OnListCommand_ShouldListBillsInOrder(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	gym := bill.Bill{Frequency: bill.Weekly, Merchant: "Gym", Amount: decimal.RequireFromString("12.5"), DueDay: 3}
	savedProfile(t, store, rent(), gym)
	handler := newTestHandler(store, cache.Nop{}, mock.NewDigestRequesterMock(m))

	got, err := handler.HandleMessage(context.Background(), "/list", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "Your bills:\n"+
		"1. Rent - $1200.0 due on day 20 (monthly)\n"+
		"2. Gym - $12.5 due on day 3 (weekly)", got)
}

func Test_OnListCommand_WithoutBills_ShouldSuggestStart(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.NewInMemStorage()
	savedProfile(t, store)
	handler := newTestHandler(store, cache.Nop{}, mock.NewDigestRequesterMock(m))

	got, err := handler.HandleMessage(context.Background(), "/list", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, noProfileMessage, got)
}

func Test_OnDigestCommand_ShouldRequestDigest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	digests := mock.NewDigestRequesterMock(m)
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, digests)

	digests.RequestDigestMock.Set(func(_ context.Context, userID int64, source string, reference time.Time) error {
		assert.Equal(m, testUserID, userID)
		assert.Equal(m, digest.SourceCommand, source)
		assert.True(m, reference.IsZero())
		return nil
	})

	got, err := handler.HandleMessage(context.Background(), "/digest", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, digestQueuedMessage, got)
	assert.Equal(t, uint64(1), digests.RequestDigestAfterCounter())
}

func Test_OnDigestCommandWithDate_ShouldRequestThatDate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	digests := mock.NewDigestRequesterMock(m)
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, digests)

	digests.RequestDigestMock.Set(func(_ context.Context, _ int64, _ string, reference time.Time) error {
		assert.Equal(m, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), reference)
		return nil
	})

	got, err := handler.HandleMessage(context.Background(), "/digest 2024-07-01", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, digestQueuedMessage, got)
	assert.Equal(t, uint64(1), digests.RequestDigestAfterCounter())
}

func Test_OnDigestCommandWithBadDate_ShouldNotRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	digests := mock.NewDigestRequesterMock(m)
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, digests)

	got, err := handler.HandleMessage(context.Background(), "/digest tomorrow", testUserID)

	assert.NoError(t, err)
	assert.Equal(t, badDigestDateMessage, got)
	assert.Zero(t, digests.RequestDigestAfterCounter())
}

func Test_OnDigestFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	digests := mock.NewDigestRequesterMock(m)
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, digests)

	digests.RequestDigestMock.Set(func(context.Context, int64, string, time.Time) error {
		return errors.New("kafka is down")
	})

	got, err := handler.HandleMessage(context.Background(), "/digest", testUserID)

	assert.Error(t, err)
	assert.Equal(t, cannotDigestMessage, got)
}

func Test_OnCancelCommand_ShouldDropDialog(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, mock.NewDigestRequesterMock(m))
	ctx := context.Background()

	got, err := handler.HandleMessage(ctx, "/cancel", testUserID)
	assert.NoError(t, err)
	assert.Equal(t, nothingToCancelMessage, got)

	_, err = handler.HandleMessage(ctx, "/start", testUserID)
	require.NoError(t, err)

	got, err = handler.HandleMessage(ctx, "/cancel", testUserID)
	assert.NoError(t, err)
	assert.Equal(t, cancelledMessage, got)

	got, err = handler.HandleMessage(ctx, "Max", testUserID)
	assert.NoError(t, err)
	assert.Equal(t, loveToTalkMessage, got)
}

func Test_OnHelpCommand_ShouldListCommands(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := newTestHandler(storage.NewInMemStorage(), cache.Nop{}, mock.NewDigestRequesterMock(m))

	got, err := handler.HandleMessage(context.Background(), "/help@bills_bot", testUserID)

	assert.NoError(t, err)
	for _, cmd := range []string{startCommand, billsCommand, listCommand, digestCommand, cancelCommand} {
		assert.True(t, strings.Contains(got, cmd), cmd)
	}
}

func Test_ParseCommand(t *testing.T) {
	tests := []struct {
		text string
		cmd  string
		arg  string
	}{
		{"/start", "/start", ""},
		{"  /Bills  ", "/bills", ""},
		{"/digest@bills_bot now", "/digest", "now"},
		{"2 weeks", "", "2 weeks"},
		{"monthly, Rent, 1200, 20", "", "monthly, Rent, 1200, 20"},
	}
	for _, tt := range tests {
		cmd, arg := parseCommand(tt.text)
		assert.Equal(t, tt.cmd, cmd, tt.text)
		assert.Equal(t, tt.arg, arg, tt.text)
	}
}

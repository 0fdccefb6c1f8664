package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/model/storage"
)

const userID = int64(123)

func say(t *testing.T, m *Machine, text string) Reply {
	t.Helper()
	reply, err := m.Handle(context.Background(), userID, text)
	require.NoError(t, err)
	return reply
}

func assertState(t *testing.T, m *Machine, want State) {
	t.Helper()
	got, ok := m.State(userID)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func Test_OnFullConversation_ShouldStoreProfileAndBills(t *testing.T) {
	store := storage.NewInMemStorage()
	m := New(store)

	assert.Equal(t, "Let's set up your bills! What's your name?", m.Start(userID).Text)
	assertState(t, m, AwaitName)

	reply := say(t, m, "Ann")
	assert.Equal(t, "Hi Ann! Do you get paid every week, every 2 weeks, or monthly? (type 'week', '2 weeks', or 'monthly')", reply.Text)
	assertState(t, m, AwaitPayFrequency)

	assert.Equal(t, askPaydayMessage, say(t, m, "2 weeks").Text)
	assertState(t, m, AwaitPayday)

	assert.Equal(t, askAddBillsMessage, say(t, m, "Friday").Text)
	assertState(t, m, AwaitBillsYesNo)

	assert.Equal(t, askBillMessage, say(t, m, "yes").Text)
	assertState(t, m, AwaitBillEntry)

	reply = say(t, m, "monthly, Rent, $1200, 1")
	assert.Equal(t, "Bill added: Rent - $1200.0 due on day 1 (monthly)", reply.Text)
	assertState(t, m, AwaitBillEntry)

	p, err := store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, p.Bills, 1)

	say(t, m, "weekly, Coffee, 5, 20")

	reply = say(t, m, "done")
	assert.True(t, reply.Finished)
	assert.Equal(t, summaryMessage, reply.Text)
	assert.False(t, m.Active(userID))

	p, err = store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, user.PayBiweekly, p.PayFrequency)
	assert.Equal(t, user.Weekday("friday"), p.Payday)
	require.Len(t, p.Bills, 2)
	assert.Equal(t, bill.Weekly, p.Bills[1].Frequency)
}

func Test_OnKnownPaySchedule_ShouldSkipPayQuestions(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	p := user.NewProfile(userID)
	p.Name = "Ann"
	p.PayFrequency = user.PayMonthly
	p.Payday = "monday"
	require.NoError(t, store.SaveProfile(ctx, p))
	m := New(store)

	m.Start(userID)
	reply := say(t, m, "Annie")

	assert.Equal(t, askAddBillsMessage, reply.Text)
	assertState(t, m, AwaitBillsYesNo)
	stored, err := store.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Annie", stored.Name)
}

func Test_OnNoBills_ShouldFinish(t *testing.T) {
	m := New(storage.NewInMemStorage())
	m.Start(userID)
	say(t, m, "Ann")
	say(t, m, "week")
	say(t, m, "monday")

	reply := say(t, m, "no")

	assert.True(t, reply.Finished)
	assert.False(t, m.Active(userID))
}

func Test_OnInvalidAnswers_ShouldStayInState(t *testing.T) {
	m := New(storage.NewInMemStorage())
	m.Start(userID)

	assert.Equal(t, emptyNameMessage, say(t, m, "   ").Text)
	assertState(t, m, AwaitName)

	say(t, m, "Ann")
	assert.Equal(t, badPayFrequencyMessage, say(t, m, "daily").Text)
	assertState(t, m, AwaitPayFrequency)

	say(t, m, "monthly")
	assert.Equal(t, badPaydayMessage, say(t, m, "someday").Text)
	assertState(t, m, AwaitPayday)

	say(t, m, "sunday")
	say(t, m, "YES")
	assertState(t, m, AwaitBillEntry)

	tests := []struct {
		entry string
		want  string
	}{
		{"monthly, Rent", badEntryFormatMessage},
		{"yearly, Rent, 10, 1", badFrequencyMessage},
		{"monthly, Rent, ten, 1", badNumberMessage},
		{"monthly, Rent, 10, first", badNumberMessage},
		{"monthly, Rent, 10, 40", badDueDayMessage},
		{"monthly, , 10, 4", emptyMerchantMessage},
		{"monthly, Rent; flat 2, 10, 4", badMerchantMessage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, say(t, m, tt.entry).Text, tt.entry)
		assertState(t, m, AwaitBillEntry)
	}
}

func Test_OnCancel_ShouldDropSession(t *testing.T) {
	m := New(storage.NewInMemStorage())
	m.Start(userID)

	assert.True(t, m.Cancel(userID))
	assert.False(t, m.Active(userID))
	assert.False(t, m.Cancel(userID))

	_, err := m.Handle(context.Background(), userID, "Ann")
	assert.Error(t, err)
}

func Test_OnRestart_ShouldBeginAgain(t *testing.T) {
	m := New(storage.NewInMemStorage())
	m.Start(userID)
	say(t, m, "Ann")

	m.Start(userID)

	assertState(t, m, AwaitName)
}

func Test_StateNames(t *testing.T) {
	assert.Equal(t, "await_bill_entry", AwaitBillEntry.String())
	assert.Equal(t, "done", Done.String())
}

package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/storage"
)

type State int

const (
	AwaitName State = iota
	AwaitPayFrequency
	AwaitPayday
	AwaitBillsYesNo
	AwaitBillEntry
	Done
)

var stateNames = map[State]string{
	AwaitName:         "await_name",
	AwaitPayFrequency: "await_pay_frequency",
	AwaitPayday:       "await_payday",
	AwaitBillsYesNo:   "await_bills_yes_no",
	AwaitBillEntry:    "await_bill_entry",
	Done:              "done",
}

func (s State) String() string {
	return stateNames[s]
}

const (
	askNameMessage         = "Let's set up your bills! What's your name?"
	emptyNameMessage       = "Please tell me your name."
	askPayFrequencyMessage = "Hi %s! Do you get paid every week, every 2 weeks, or monthly? (type 'week', '2 weeks', or 'monthly')"
	badPayFrequencyMessage = "Please type 'week', '2 weeks', or 'monthly' only."
	askPaydayMessage       = "What day of the week do you get paid on? (e.g., Monday, Tuesday)"
	badPaydayMessage       = "Please enter a valid day of the week."
	askAddBillsMessage     = "Would you like to add any bills? (type 'yes' or 'no')"
	askBillMessage         = "Enter the bill frequency (weekly, bi-weekly, or monthly), merchant name, amount, and due date (day of the month, e.g., 15). Type 'done' when you are finished."
	billAddedMessage       = "Bill added: "
	summaryMessage         = "Here's a summary of your bills:"

	badEntryFormatMessage = "Please enter all four parts: 'frequency, merchant, amount, due day'."
	badNumberMessage      = "Please ensure the amount is a valid number and the due day is a valid integer."
	badDueDayMessage      = "Please enter a valid day of the month (1-31) for the due date."
	badFrequencyMessage   = "Please use weekly, bi-weekly, or monthly for the bill frequency."
	emptyMerchantMessage  = "Please include the merchant name."
	badMerchantMessage    = "Please leave ';' out of the merchant name."
)

const (
	yesAnswer  = "yes"
	doneAnswer = "done"
)

type profileStorage interface {
	GetProfile(ctx context.Context, id int64) (user.Profile, error)
	SaveProfile(ctx context.Context, p user.Profile) error
	AddBill(ctx context.Context, userID int64, b bill.Bill) error
}

// Reply is the answer to one step. Finished is set once the session reached
// Done and has been closed.
type Reply struct {
	Text     string
	Finished bool
}

type session struct {
	mu    sync.Mutex
	state State
}

// Machine runs one setup conversation per user.
type Machine struct {
	mu       sync.Mutex
	sessions map[int64]*session
	storage  profileStorage
}

func New(storage profileStorage) *Machine {
	return &Machine{
		sessions: make(map[int64]*session),
		storage:  storage,
	}
}

// Start opens a fresh session, replacing any unfinished one.
func (m *Machine) Start(userID int64) Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = &session{state: AwaitName}
	return Reply{Text: askNameMessage}
}

func (m *Machine) Active(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[userID]
	return ok
}

// Cancel drops the user's session and reports whether there was one.
func (m *Machine) Cancel(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[userID]
	delete(m.sessions, userID)
	return ok
}

func (m *Machine) State(userID int64) (State, bool) {
	s := m.session(userID)
	if s == nil {
		return Done, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, true
}

func (m *Machine) session(userID int64) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// Handle feeds one message into the user's session. Invalid answers keep the
// session in its current state and explain what is expected.
func (m *Machine) Handle(ctx context.Context, userID int64, text string) (Reply, error) {
	s := m.session(userID)
	if s == nil {
		return Reply{}, errors.New("no active dialog")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	from := s.state
	reply, next, err := m.step(ctx, userID, s.state, text)
	if err != nil {
		return Reply{}, errors.Wrapf(err, "dialog step %s", from)
	}
	s.state = next
	logger.Debug("dialog transition",
		zap.Int64("userID", userID),
		zap.Stringer("from", from),
		zap.Stringer("to", next))

	if next == Done {
		m.finish(userID, s)
		reply.Finished = true
	}
	return reply, nil
}

func (m *Machine) finish(userID int64, s *session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// a concurrent /start may already have replaced the session
	if m.sessions[userID] == s {
		delete(m.sessions, userID)
	}
}

func (m *Machine) step(ctx context.Context, userID int64, state State, text string) (Reply, State, error) {
	switch state {
	case AwaitName:
		return m.onName(ctx, userID, text)
	case AwaitPayFrequency:
		return m.onPayFrequency(ctx, userID, text)
	case AwaitPayday:
		return m.onPayday(ctx, userID, text)
	case AwaitBillsYesNo:
		if strings.EqualFold(text, yesAnswer) {
			return Reply{Text: askBillMessage}, AwaitBillEntry, nil
		}
		return Reply{Text: summaryMessage}, Done, nil
	case AwaitBillEntry:
		return m.onBillEntry(ctx, userID, text)
	}
	return Reply{Text: summaryMessage}, Done, nil
}

func (m *Machine) onName(ctx context.Context, userID int64, name string) (Reply, State, error) {
	if name == "" {
		return Reply{Text: emptyNameMessage}, AwaitName, nil
	}

	p, err := m.loadProfile(ctx, userID)
	if err != nil {
		return Reply{}, AwaitName, err
	}
	p.Name = name
	if err = m.storage.SaveProfile(ctx, p); err != nil {
		return Reply{}, AwaitName, err
	}

	if p.HasPaySchedule() {
		return Reply{Text: askAddBillsMessage}, AwaitBillsYesNo, nil
	}
	return Reply{Text: fmt.Sprintf(askPayFrequencyMessage, name)}, AwaitPayFrequency, nil
}

func (m *Machine) onPayFrequency(ctx context.Context, userID int64, text string) (Reply, State, error) {
	freq, err := user.ParsePayFrequency(text)
	if err != nil {
		return Reply{Text: badPayFrequencyMessage}, AwaitPayFrequency, nil
	}

	p, err := m.loadProfile(ctx, userID)
	if err != nil {
		return Reply{}, AwaitPayFrequency, err
	}
	p.PayFrequency = freq
	if err = m.storage.SaveProfile(ctx, p); err != nil {
		return Reply{}, AwaitPayFrequency, err
	}
	return Reply{Text: askPaydayMessage}, AwaitPayday, nil
}

func (m *Machine) onPayday(ctx context.Context, userID int64, text string) (Reply, State, error) {
	day, err := user.ParseWeekday(text)
	if err != nil {
		return Reply{Text: badPaydayMessage}, AwaitPayday, nil
	}

	p, err := m.loadProfile(ctx, userID)
	if err != nil {
		return Reply{}, AwaitPayday, err
	}
	p.Payday = day
	if err = m.storage.SaveProfile(ctx, p); err != nil {
		return Reply{}, AwaitPayday, err
	}
	return Reply{Text: askAddBillsMessage}, AwaitBillsYesNo, nil
}

func (m *Machine) onBillEntry(ctx context.Context, userID int64, text string) (Reply, State, error) {
	if strings.EqualFold(text, doneAnswer) {
		return Reply{Text: summaryMessage}, Done, nil
	}

	b, err := bill.ParseEntry(text)
	if err != nil {
		return Reply{Text: entryErrorMessage(err)}, AwaitBillEntry, nil
	}

	// persisted right away so a dropped conversation keeps what was entered
	if err = m.storage.AddBill(ctx, userID, b); err != nil {
		return Reply{}, AwaitBillEntry, err
	}
	return Reply{Text: billAddedMessage + b.String()}, AwaitBillEntry, nil
}

func (m *Machine) loadProfile(ctx context.Context, userID int64) (user.Profile, error) {
	p, err := m.storage.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return user.NewProfile(userID), nil
	}
	return p, err
}

func entryErrorMessage(err error) string {
	switch {
	case errors.Is(err, bill.ErrEntryFormat):
		return badEntryFormatMessage
	case errors.Is(err, bill.ErrUnknownFrequency):
		return badFrequencyMessage
	case errors.Is(err, bill.ErrDueDayOutOfRange):
		return badDueDayMessage
	case errors.Is(err, bill.ErrEmptyMerchant):
		return emptyMerchantMessage
	case errors.Is(err, bill.ErrReservedMerchant):
		return badMerchantMessage
	}
	return badNumberMessage
}

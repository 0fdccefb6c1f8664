package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/clients/cache"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/dialog"
	"max.ks1230/bills-bot/internal/model/storage"
	"max.ks1230/bills-bot/internal/model/summary"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	loveToTalkMessage     = "I would love to talk about it more! Type /start to set up your bills."
	helpMessage           = "Hello! I keep track of your recurring bills 🧾\n" +
		"/start - set up your profile and add bills\n" +
		"/bills - bills due soon\n" +
		"/list - all your bills\n" +
		"/digest [YYYY-MM-DD] - send me a digest in a moment, optionally as of a date\n" +
		"/cancel - stop the current setup"
	noProfileMessage       = "You have no bills set up. Type /start to add some."
	billListMessage        = "Your bills:"
	cancelledMessage       = "Okay, setup cancelled. Bills you already added are saved."
	nothingToCancelMessage = "There is nothing to cancel."
	digestQueuedMessage    = "Gotcha! Your digest is on its way."
	cannotGetBillsMessage  = "Can't get your bills atm. Try later"
	cannotSaveBillMessage  = "Can't save your answer atm. Try again"
	cannotDigestMessage    = "Can't prepare a digest atm. Try later"
	badDigestDateMessage   = "Please use /digest or /digest YYYY-MM-DD."
)

const digestDateLayout = "2006-01-02"

const (
	startCommand  = "/start"
	billsCommand  = "/bills"
	listCommand   = "/list"
	digestCommand = "/digest"
	cancelCommand = "/cancel"
	helpCommand   = "/help"
)

type profileStorage interface {
	GetProfile(ctx context.Context, id int64) (user.Profile, error)
	SaveProfile(ctx context.Context, p user.Profile) error
	AddBill(ctx context.Context, userID int64, b bill.Bill) error
}

type reportCache interface {
	CacheReport(userID int64, option string, report string) error
	GetReport(userID int64, option string) (string, error)
	InvalidateCache(userID int64, options []string) error
}

type billSummarizer interface {
	Summarize(bills []bill.Bill, reference time.Time) (summary.Report, error)
}

type digestRequester interface {
	RequestDigest(ctx context.Context, userID int64, source string, reference time.Time) error
}

type config interface {
	Location() *time.Location
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	storage     profileStorage
	cache       reportCache
	summarizer  billSummarizer
	digests     digestRequester
	dialogs     *dialog.Machine
	location    *time.Location
	now         func() time.Time
}

type Option func(*HandlerService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *HandlerService) {
		s.now = now
	}
}

func NewHandler(
	config config,
	storage profileStorage,
	cache reportCache,
	summarizer billSummarizer,
	digests digestRequester,
	opts ...Option,
) *HandlerService {
	res := &HandlerService{
		storage:    storage,
		cache:      cache,
		summarizer: summarizer,
		digests:    digests,
		location:   config.Location(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	res.dialogs = dialog.New(&invalidatingStorage{profileStorage: storage, handler: res})
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)
	observeCommand(cmd)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[billsCommand] = s.handleBills
	m[listCommand] = s.handleList
	m[digestCommand] = s.handleDigest
	m[cancelCommand] = s.handleCancel
	m[helpCommand] = s.handleHelp

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) today() time.Time {
	return s.now().In(s.location)
}

func (s *HandlerService) handleStart(_ context.Context, _ string, userID int64) (string, error) {
	return s.dialogs.Start(userID).Text, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleCancel(_ context.Context, _ string, userID int64) (string, error) {
	if s.dialogs.Cancel(userID) {
		return cancelledMessage, nil
	}
	return nothingToCancelMessage, nil
}

func (s *HandlerService) handleNoCommand(ctx context.Context, arg string, userID int64) (string, error) {
	if !s.dialogs.Active(userID) {
		return loveToTalkMessage, nil
	}

	reply, err := s.dialogs.Handle(ctx, userID, arg)
	if err != nil {
		return cannotSaveBillMessage, errors.Wrap(err, "handle dialog")
	}
	if !reply.Finished {
		return reply.Text, nil
	}

	report, err := s.billsReport(ctx, userID)
	if err != nil {
		return cannotGetBillsMessage, errors.Wrap(err, "handle dialog")
	}
	return reply.Text + "\n" + report, nil
}

func (s *HandlerService) handleBills(ctx context.Context, _ string, userID int64) (string, error) {
	report, err := s.billsReport(ctx, userID)
	if err != nil {
		return cannotGetBillsMessage, errors.Wrap(err, "handle bills")
	}
	return report, nil
}

// billsReport renders today's summary, served from cache when possible.
func (s *HandlerService) billsReport(ctx context.Context, userID int64) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "billsReport")
	defer span.Finish()

	today := s.today()
	option := billsCacheOption(today)

	cached, err := s.cache.GetReport(userID, option)
	if err == nil {
		observeSummary("cached", true)
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Error("cannot read report cache", zap.Error(err), zap.Int64("userID", userID))
	}

	p, err := s.storage.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return noProfileMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get profile")
	}

	report, err := s.summarizer.Summarize(p.Bills, today)
	if err != nil {
		return "", errors.Wrap(err, "summarize")
	}
	observeSummary(string(report.Kind), false)

	text := report.Text()
	if err = s.cache.CacheReport(userID, option, text); err != nil {
		logger.Error("cannot cache report", zap.Error(err), zap.Int64("userID", userID))
	}
	return text, nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string, userID int64) (string, error) {
	p, err := s.storage.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return noProfileMessage, nil
	}
	if err != nil {
		return cannotGetBillsMessage, errors.Wrap(err, "handle list")
	}
	if len(p.Bills) == 0 {
		return noProfileMessage, nil
	}
	return formatBillList(p.Bills), nil
}

// handleDigest queues a digest as of the given date, or as of the reporter's
// today when no date is given.
func (s *HandlerService) handleDigest(ctx context.Context, arg string, userID int64) (string, error) {
	var reference time.Time
	if arg != "" {
		var err error
		reference, err = time.ParseInLocation(digestDateLayout, arg, s.location)
		if err != nil {
			return badDigestDateMessage, nil
		}
	}

	if err := s.digests.RequestDigest(ctx, userID, digest.SourceCommand, reference); err != nil {
		return cannotDigestMessage, errors.Wrap(err, "handle digest")
	}
	return digestQueuedMessage, nil
}

func (s *HandlerService) invalidate(userID int64) {
	err := s.cache.InvalidateCache(userID, []string{billsCacheOption(s.today())})
	if err != nil {
		logger.Error("cannot invalidate report cache", zap.Error(err), zap.Int64("userID", userID))
	}
}

// invalidatingStorage drops the cached summary whenever the dialog adds a bill.
type invalidatingStorage struct {
	profileStorage
	handler *HandlerService
}

func (s *invalidatingStorage) AddBill(ctx context.Context, userID int64, b bill.Bill) error {
	if err := s.profileStorage.AddBill(ctx, userID, b); err != nil {
		return err
	}
	s.handler.invalidate(userID)
	return nil
}

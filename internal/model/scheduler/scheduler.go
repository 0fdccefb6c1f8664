package scheduler

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/logger"
)

const jobTimeout = 5 * time.Minute

type userLister interface {
	ListUserIDs(ctx context.Context) ([]int64, error)
}

type digestRequester interface {
	RequestDigest(ctx context.Context, userID int64, source string, reference time.Time) error
}

type config interface {
	DigestSpec() string
}

// Scheduler asks the reporter for a digest of every stored user on a cron
// schedule.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	users   userLister
	digests digestRequester
}

func New(config config, loc *time.Location, users userLister, digests digestRequester) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		spec:    config.DigestSpec(),
		users:   users,
		digests: digests,
	}
}

// Run blocks until ctx is cancelled and the running job, if any, returns.
func (s *Scheduler) Run(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()
		if _, err := s.RequestDigests(jobCtx); err != nil {
			logger.Error("scheduled digests failed", zap.Error(err))
		}
	})
	if err != nil {
		return errors.Wrapf(err, "schedule digests %q", s.spec)
	}

	logger.Info("Start scheduling digests", zap.String("spec", s.spec))
	s.cron.Start()

	<-ctx.Done()
	<-s.cron.Stop().Done()
	logger.Info("Stop scheduling digests")
	return nil
}

// RequestDigests queues one digest per stored user and returns how many
// requests were accepted by the queue.
func (s *Scheduler) RequestDigests(ctx context.Context) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "requestDigests")
	defer span.Finish()

	ids, err := s.users.ListUserIDs(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return 0, errors.Wrap(err, "list users")
	}

	requested := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return requested, errors.Wrap(ctx.Err(), "request digests")
		}
		if s.requestOne(ctx, id) {
			requested++
		}
	}

	logger.Info("scheduled digests requested", zap.Int("requested", requested), zap.Int("users", len(ids)))
	return requested, nil
}

func (s *Scheduler) requestOne(ctx context.Context, userID int64) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "requestDigest")
	defer span.Finish()
	span.SetTag("userID", userID)

	// zero reference: the reporter resolves due dates against its own today
	err := s.digests.RequestDigest(ctx, userID, digest.SourceSchedule, time.Time{})
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to request digest", zap.Error(err), zap.Int64("userID", userID))
		return false
	}
	return true
}

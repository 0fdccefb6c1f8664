package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/storage"
	"max.ks1230/bills-bot/internal/model/summary"
)

type profileStorage interface {
	GetProfile(ctx context.Context, id int64) (user.Profile, error)
}

type billSummarizer interface {
	Summarize(bills []bill.Bill, reference time.Time) (summary.Report, error)
}

type config interface {
	Location() *time.Location
}

type Generator struct {
	storage    profileStorage
	summarizer billSummarizer
	location   *time.Location
	now        func() time.Time
}

func NewGenerator(config config, storage profileStorage, summarizer billSummarizer) *Generator {
	return &Generator{
		storage:    storage,
		summarizer: summarizer,
		location:   config.Location(),
		now:        time.Now,
	}
}

// GenerateReport builds the digest for one request. Failures are reported in
// the result so the bot can still answer the user.
func (g *Generator) GenerateReport(ctx context.Context, req digest.Request) (result digest.Result) {
	logger.Info("GenerateReport - start",
		zap.Int64("userID", req.UserID),
		zap.String("requestID", req.RequestID),
		zap.String("source", req.Source))
	defer logger.Info("GenerateReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("source", req.Source)

	defer func() {
		result.UserID = req.UserID
		if !result.Success() {
			ext.Error.Set(span, true)
		}
		observeDigest(req.Source, result)
	}()

	report, err := g.generate(ctx, req)
	if err != nil {
		logger.Error("cannot generate report", zap.Error(err), zap.Int64("userID", req.UserID))
		return digest.Result{Error: err.Error()}
	}

	// scheduled digests stay quiet for users without bills
	if req.Source == digest.SourceSchedule && report.Kind == summary.NoBills {
		return digest.Result{Kind: string(report.Kind)}
	}
	return digest.Result{
		Kind: string(report.Kind),
		Text: report.Text(),
	}
}

func (g *Generator) generate(ctx context.Context, req digest.Request) (summary.Report, error) {
	p, err := g.storage.GetProfile(ctx, req.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return summary.Report{}, errors.Wrap(err, "generate report")
	}

	reference := req.ReferenceDate
	if reference.IsZero() {
		reference = g.now().In(g.location)
	}

	report, err := g.summarizer.Summarize(p.Bills, reference)
	if err != nil {
		return summary.Report{}, errors.Wrap(err, "generate report")
	}
	return report, nil
}

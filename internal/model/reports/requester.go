package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/logger"
)

type messageProducer interface {
	ProduceMessage(key string, message []byte) error
}

// Requester queues digest requests for the reporter.
type Requester struct {
	producer messageProducer
}

func NewRequester(producer messageProducer) *Requester {
	return &Requester{producer: producer}
}

// RequestDigest queues a digest. A zero reference leaves the date to the
// reporter's clock.
func (r *Requester) RequestDigest(ctx context.Context, userID int64, source string, reference time.Time) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "requestDigest")
	defer span.Finish()

	req := digest.Request{
		RequestID:     uuid.NewString(),
		UserID:        userID,
		Source:        source,
		ReferenceDate: reference,
	}
	raw, err := req.Marshal()
	if err != nil {
		return errors.Wrap(err, "request digest")
	}
	if err = r.producer.ProduceMessage(req.RequestID, raw); err != nil {
		return errors.Wrap(err, "request digest")
	}

	logger.Info("digest requested",
		zap.String("requestID", req.RequestID),
		zap.Int64("userID", userID),
		zap.String("source", source))
	return nil
}

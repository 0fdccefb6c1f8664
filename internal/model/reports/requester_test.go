package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/model/reports/mock"
)

func Test_OnRequestDigest_ShouldProduceRequestKeyedByID(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	producer := mock.NewMessageProducerMock(m)

	producer.ProduceMessageMock.Set(func(key string, message []byte) error {
		req, err := digest.UnmarshalRequest(message, time.UTC)
		assert.NoError(m, err)
		assert.Equal(m, key, req.RequestID)
		_, err = uuid.Parse(key)
		assert.NoError(m, err)
		assert.Equal(m, int64(123), req.UserID)
		assert.Equal(m, digest.SourceSchedule, req.Source)
		assert.True(m, req.ReferenceDate.IsZero())
		return nil
	})

	err := NewRequester(producer).RequestDigest(context.Background(), 123, digest.SourceSchedule, time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), producer.ProduceMessageAfterCounter())
}

func Test_OnProducerFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	producer := mock.NewMessageProducerMock(m)

	producer.ProduceMessageMock.Set(func(string, []byte) error {
		return errors.New("no brokers")
	})

	err := NewRequester(producer).RequestDigest(context.Background(), 123, digest.SourceCommand, time.Time{})

	assert.Error(t, err)
}

func Test_OnRequestDigestWithDate_ShouldCarryReferenceDate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	producer := mock.NewMessageProducerMock(m)
	reference := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	producer.ProduceMessageMock.Set(func(_ string, message []byte) error {
		req, err := digest.UnmarshalRequest(message, time.UTC)
		assert.NoError(m, err)
		assert.Equal(m, digest.SourceCommand, req.Source)
		assert.Equal(m, reference, req.ReferenceDate)
		return nil
	})

	err := NewRequester(producer).RequestDigest(context.Background(), 123, digest.SourceCommand, reference)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), producer.ProduceMessageAfterCounter())
}

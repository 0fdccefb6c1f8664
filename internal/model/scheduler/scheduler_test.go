package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/model/scheduler/mock"
)

type testConfig string

func (c testConfig) DigestSpec() string {
	return string(c)
}

func Test_OnRequestDigests_ShouldRequestEveryUser(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	users := mock.NewUserListerMock(m)
	digests := mock.NewDigestRequesterMock(m)

	var (
		mu  sync.Mutex
		got []int64
	)
	users.ListUserIDsMock.Set(func(context.Context) ([]int64, error) {
		return []int64{1, 2, 3}, nil
	})
	digests.RequestDigestMock.Set(func(_ context.Context, userID int64, source string, reference time.Time) error {
		assert.Equal(m, digest.SourceSchedule, source)
		assert.True(m, reference.IsZero())
		mu.Lock()
		got = append(got, userID)
		mu.Unlock()
		return nil
	})

	s := New(testConfig("0 9 * * *"), time.UTC, users, digests)
	n, err := s.RequestDigests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func Test_OnRequestFailure_ShouldContinueWithOtherUsers(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	users := mock.NewUserListerMock(m)
	digests := mock.NewDigestRequesterMock(m)

	users.ListUserIDsMock.Set(func(context.Context) ([]int64, error) {
		return []int64{1, 2, 3}, nil
	})
	digests.RequestDigestMock.Set(func(_ context.Context, userID int64, _ string, _ time.Time) error {
		if userID == 2 {
			return errors.New("kafka is down")
		}
		return nil
	})

	s := New(testConfig("0 9 * * *"), time.UTC, users, digests)
	n, err := s.RequestDigests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(3), digests.RequestDigestAfterCounter())
}

func Test_OnListFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	users := mock.NewUserListerMock(m)
	digests := mock.NewDigestRequesterMock(m)

	users.ListUserIDsMock.Set(func(context.Context) ([]int64, error) {
		return nil, errors.New("db is down")
	})

	s := New(testConfig("0 9 * * *"), time.UTC, users, digests)
	n, err := s.RequestDigests(context.Background())

	assert.Error(t, err)
	assert.Zero(t, n)
}

func Test_OnInvalidSpec_RunShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	s := New(testConfig("every morning"), time.UTC, mock.NewUserListerMock(m), mock.NewDigestRequesterMock(m))
	err := s.Run(context.Background())

	assert.Error(t, err)
}

func Test_OnCancel_RunShouldStop(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	s := New(testConfig("0 9 * * *"), time.UTC, mock.NewUserListerMock(m), mock.NewDigestRequesterMock(m))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
}

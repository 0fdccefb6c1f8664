package mock

import (
	"context"
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"
	"time"

	"github.com/gojuno/minimock/v3"
)

// DigestRequesterMock implements the consumer's interface for tests.
type DigestRequesterMock struct {
	t minimock.Tester

	funcRequestDigest          func(ctx context.Context, userID int64, source string, reference time.Time) (err error)
	inspectFuncRequestDigest   func(ctx context.Context, userID int64, source string, reference time.Time)
	afterRequestDigestCounter  uint64
	beforeRequestDigestCounter uint64
	RequestDigestMock          mDigestRequesterMockRequestDigest
}

// NewDigestRequesterMock returns a mock registered with the minimock controller.
func NewDigestRequesterMock(t minimock.Tester) *DigestRequesterMock {
	m := &DigestRequesterMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.RequestDigestMock = mDigestRequesterMockRequestDigest{mock: m}

	return m
}

type mDigestRequesterMockRequestDigest struct {
	mock               *DigestRequesterMock
	defaultExpectation *DigestRequesterMockRequestDigestExpectation

	callArgs []*DigestRequesterMockRequestDigestParams
	mutex    sync.RWMutex
}

// DigestRequesterMockRequestDigestExpectation specifies expectation struct of the DigestRequesterMock.RequestDigest
type DigestRequesterMockRequestDigestExpectation struct {
	mock    *DigestRequesterMock
	params  *DigestRequesterMockRequestDigestParams
	results *DigestRequesterMockRequestDigestResults
	Counter uint64
}

// DigestRequesterMockRequestDigestParams contains parameters of the DigestRequesterMock.RequestDigest
type DigestRequesterMockRequestDigestParams struct {
	ctx       context.Context
	userID    int64
	source    string
	reference time.Time
}

// DigestRequesterMockRequestDigestResults contains results of the DigestRequesterMock.RequestDigest
type DigestRequesterMockRequestDigestResults struct {
	err error
}

// Expect sets up expected params for DigestRequesterMock.RequestDigest
func (mmRequestDigest *mDigestRequesterMockRequestDigest) Expect(ctx context.Context, userID int64, source string, reference time.Time) *mDigestRequesterMockRequestDigest {
	if mmRequestDigest.mock.funcRequestDigest != nil {
		mmRequestDigest.mock.t.Fatalf("DigestRequesterMock.RequestDigest mock is already set by Set")
	}

	if mmRequestDigest.defaultExpectation == nil {
		mmRequestDigest.defaultExpectation = &DigestRequesterMockRequestDigestExpectation{}
	}

	mmRequestDigest.defaultExpectation.params = &DigestRequesterMockRequestDigestParams{ctx, userID, source, reference}
	return mmRequestDigest
}

// Inspect accepts an inspector function that has same arguments as the DigestRequesterMock.RequestDigest
func (mmRequestDigest *mDigestRequesterMockRequestDigest) Inspect(f func(ctx context.Context, userID int64, source string, reference time.Time)) *mDigestRequesterMockRequestDigest {
	if mmRequestDigest.mock.inspectFuncRequestDigest != nil {
		mmRequestDigest.mock.t.Fatalf("Inspect function is already set for DigestRequesterMock.RequestDigest")
	}

	mmRequestDigest.mock.inspectFuncRequestDigest = f

	return mmRequestDigest
}

// Return sets up results that will be returned by DigestRequesterMock.RequestDigest
func (mmRequestDigest *mDigestRequesterMockRequestDigest) Return(err error) *DigestRequesterMock {
	if mmRequestDigest.mock.funcRequestDigest != nil {
		mmRequestDigest.mock.t.Fatalf("DigestRequesterMock.RequestDigest mock is already set by Set")
	}

	if mmRequestDigest.defaultExpectation == nil {
		mmRequestDigest.defaultExpectation = &DigestRequesterMockRequestDigestExpectation{mock: mmRequestDigest.mock}
	}
	mmRequestDigest.defaultExpectation.results = &DigestRequesterMockRequestDigestResults{err}
	return mmRequestDigest.mock
}

// Set uses given function f to mock the DigestRequesterMock.RequestDigest method
func (mmRequestDigest *mDigestRequesterMockRequestDigest) Set(f func(ctx context.Context, userID int64, source string, reference time.Time) (err error)) *DigestRequesterMock {
	if mmRequestDigest.defaultExpectation != nil {
		mmRequestDigest.mock.t.Fatalf("Default expectation is already set for the DigestRequesterMock.RequestDigest method")
	}

	mmRequestDigest.mock.funcRequestDigest = f
	return mmRequestDigest.mock
}

// RequestDigest implements the mocked interface
func (mmRequestDigest *DigestRequesterMock) RequestDigest(ctx context.Context, userID int64, source string, reference time.Time) (err error) {
	mm_atomic.AddUint64(&mmRequestDigest.beforeRequestDigestCounter, 1)
	defer mm_atomic.AddUint64(&mmRequestDigest.afterRequestDigestCounter, 1)

	if mmRequestDigest.inspectFuncRequestDigest != nil {
		mmRequestDigest.inspectFuncRequestDigest(ctx, userID, source, reference)
	}

	mm_params := &DigestRequesterMockRequestDigestParams{ctx, userID, source, reference}

	mmRequestDigest.RequestDigestMock.mutex.Lock()
	mmRequestDigest.RequestDigestMock.callArgs = append(mmRequestDigest.RequestDigestMock.callArgs, mm_params)
	mmRequestDigest.RequestDigestMock.mutex.Unlock()

	if mmRequestDigest.RequestDigestMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRequestDigest.RequestDigestMock.defaultExpectation.Counter, 1)
		mm_want := mmRequestDigest.RequestDigestMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmRequestDigest.t.Errorf("DigestRequesterMock.RequestDigest got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmRequestDigest.RequestDigestMock.defaultExpectation.results
		if mm_results == nil {
			mmRequestDigest.t.Fatal("No results are set for the DigestRequesterMock.RequestDigest")
		}
		return (*mm_results).err
	}
	if mmRequestDigest.funcRequestDigest != nil {
		return mmRequestDigest.funcRequestDigest(ctx, userID, source, reference)
	}
	mmRequestDigest.t.Fatalf("Unexpected call to DigestRequesterMock.RequestDigest. %v", mm_params)
	return
}

// RequestDigestAfterCounter returns a count of finished DigestRequesterMock.RequestDigest invocations
func (mmRequestDigest *DigestRequesterMock) RequestDigestAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestDigest.afterRequestDigestCounter)
}

// RequestDigestBeforeCounter returns a count of DigestRequesterMock.RequestDigest invocations
func (mmRequestDigest *DigestRequesterMock) RequestDigestBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestDigest.beforeRequestDigestCounter)
}

// Calls returns a list of arguments used in each call to DigestRequesterMock.RequestDigest.
func (mmRequestDigest *mDigestRequesterMockRequestDigest) Calls() []*DigestRequesterMockRequestDigestParams {
	mmRequestDigest.mutex.RLock()
	defer mmRequestDigest.mutex.RUnlock()

	argCopy := make([]*DigestRequesterMockRequestDigestParams, len(mmRequestDigest.callArgs))
	copy(argCopy, mmRequestDigest.callArgs)

	return argCopy
}

// MinimockRequestDigestDone returns true if the expected call happened
func (m *DigestRequesterMock) MinimockRequestDigestDone() bool {
	if m.RequestDigestMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.RequestDigestMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *DigestRequesterMock) MinimockFinish() {
	if !m.MinimockRequestDigestDone() {
		m.t.Errorf("Expected call to DigestRequesterMock.RequestDigest")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *DigestRequesterMock) MinimockWait(timeout mm_time.Duration) {
	timeoutCh := mm_time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-mm_time.After(10 * mm_time.Millisecond):
		}
	}
}

func (m *DigestRequesterMock) minimockDone() bool {
	return m.MinimockRequestDigestDone()
}

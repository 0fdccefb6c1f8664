package mock

import (
	"context"
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// UserListerMock implements the consumer's interface for tests.
type UserListerMock struct {
	t minimock.Tester

	funcListUserIDs          func(ctx context.Context) (ia1 []int64, err error)
	inspectFuncListUserIDs   func(ctx context.Context)
	afterListUserIDsCounter  uint64
	beforeListUserIDsCounter uint64
	ListUserIDsMock          mUserListerMockListUserIDs
}

// NewUserListerMock returns a mock registered with the minimock controller.
func NewUserListerMock(t minimock.Tester) *UserListerMock {
	m := &UserListerMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ListUserIDsMock = mUserListerMockListUserIDs{mock: m}

	return m
}

type mUserListerMockListUserIDs struct {
	mock               *UserListerMock
	defaultExpectation *UserListerMockListUserIDsExpectation

	callArgs []*UserListerMockListUserIDsParams
	mutex    sync.RWMutex
}

// UserListerMockListUserIDsExpectation specifies expectation struct of the UserListerMock.ListUserIDs
type UserListerMockListUserIDsExpectation struct {
	mock    *UserListerMock
	params  *UserListerMockListUserIDsParams
	results *UserListerMockListUserIDsResults
	Counter uint64
}

// UserListerMockListUserIDsParams contains parameters of the UserListerMock.ListUserIDs
type UserListerMockListUserIDsParams struct {
	ctx context.Context
}

// UserListerMockListUserIDsResults contains results of the UserListerMock.ListUserIDs
type UserListerMockListUserIDsResults struct {
	ia1 []int64
	err error
}

// Expect sets up expected params for UserListerMock.ListUserIDs
func (mmListUserIDs *mUserListerMockListUserIDs) Expect(ctx context.Context) *mUserListerMockListUserIDs {
	if mmListUserIDs.mock.funcListUserIDs != nil {
		mmListUserIDs.mock.t.Fatalf("UserListerMock.ListUserIDs mock is already set by Set")
	}

	if mmListUserIDs.defaultExpectation == nil {
		mmListUserIDs.defaultExpectation = &UserListerMockListUserIDsExpectation{}
	}

	mmListUserIDs.defaultExpectation.params = &UserListerMockListUserIDsParams{ctx}
	return mmListUserIDs
}

// Inspect accepts an inspector function that has same arguments as the UserListerMock.ListUserIDs
func (mmListUserIDs *mUserListerMockListUserIDs) Inspect(f func(ctx context.Context)) *mUserListerMockListUserIDs {
	if mmListUserIDs.mock.inspectFuncListUserIDs != nil {
		mmListUserIDs.mock.t.Fatalf("Inspect function is already set for UserListerMock.ListUserIDs")
	}

	mmListUserIDs.mock.inspectFuncListUserIDs = f

	return mmListUserIDs
}

// Return sets up results that will be returned by UserListerMock.ListUserIDs
func (mmListUserIDs *mUserListerMockListUserIDs) Return(ia1 []int64, err error) *UserListerMock {
	if mmListUserIDs.mock.funcListUserIDs != nil {
		mmListUserIDs.mock.t.Fatalf("UserListerMock.ListUserIDs mock is already set by Set")
	}

	if mmListUserIDs.defaultExpectation == nil {
		mmListUserIDs.defaultExpectation = &UserListerMockListUserIDsExpectation{mock: mmListUserIDs.mock}
	}
	mmListUserIDs.defaultExpectation.results = &UserListerMockListUserIDsResults{ia1, err}
	return mmListUserIDs.mock
}

// Set uses given function f to mock the UserListerMock.ListUserIDs method
func (mmListUserIDs *mUserListerMockListUserIDs) Set(f func(ctx context.Context) (ia1 []int64, err error)) *UserListerMock {
	if mmListUserIDs.defaultExpectation != nil {
		mmListUserIDs.mock.t.Fatalf("Default expectation is already set for the UserListerMock.ListUserIDs method")
	}

	mmListUserIDs.mock.funcListUserIDs = f
	return mmListUserIDs.mock
}

// ListUserIDs implements the mocked interface
func (mmListUserIDs *UserListerMock) ListUserIDs(ctx context.Context) (ia1 []int64, err error) {
	mm_atomic.AddUint64(&mmListUserIDs.beforeListUserIDsCounter, 1)
	defer mm_atomic.AddUint64(&mmListUserIDs.afterListUserIDsCounter, 1)

	if mmListUserIDs.inspectFuncListUserIDs != nil {
		mmListUserIDs.inspectFuncListUserIDs(ctx)
	}

	mm_params := &UserListerMockListUserIDsParams{ctx}

	mmListUserIDs.ListUserIDsMock.mutex.Lock()
	mmListUserIDs.ListUserIDsMock.callArgs = append(mmListUserIDs.ListUserIDsMock.callArgs, mm_params)
	mmListUserIDs.ListUserIDsMock.mutex.Unlock()

	if mmListUserIDs.ListUserIDsMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmListUserIDs.ListUserIDsMock.defaultExpectation.Counter, 1)
		mm_want := mmListUserIDs.ListUserIDsMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmListUserIDs.t.Errorf("UserListerMock.ListUserIDs got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmListUserIDs.ListUserIDsMock.defaultExpectation.results
		if mm_results == nil {
			mmListUserIDs.t.Fatal("No results are set for the UserListerMock.ListUserIDs")
		}
		return (*mm_results).ia1, (*mm_results).err
	}
	if mmListUserIDs.funcListUserIDs != nil {
		return mmListUserIDs.funcListUserIDs(ctx)
	}
	mmListUserIDs.t.Fatalf("Unexpected call to UserListerMock.ListUserIDs. %v", mm_params)
	return
}

// ListUserIDsAfterCounter returns a count of finished UserListerMock.ListUserIDs invocations
func (mmListUserIDs *UserListerMock) ListUserIDsAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListUserIDs.afterListUserIDsCounter)
}

// ListUserIDsBeforeCounter returns a count of UserListerMock.ListUserIDs invocations
func (mmListUserIDs *UserListerMock) ListUserIDsBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListUserIDs.beforeListUserIDsCounter)
}

// Calls returns a list of arguments used in each call to UserListerMock.ListUserIDs.
func (mmListUserIDs *mUserListerMockListUserIDs) Calls() []*UserListerMockListUserIDsParams {
	mmListUserIDs.mutex.RLock()
	defer mmListUserIDs.mutex.RUnlock()

	argCopy := make([]*UserListerMockListUserIDsParams, len(mmListUserIDs.callArgs))
	copy(argCopy, mmListUserIDs.callArgs)

	return argCopy
}

// MinimockListUserIDsDone returns true if the expected call happened
func (m *UserListerMock) MinimockListUserIDsDone() bool {
	if m.ListUserIDsMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.ListUserIDsMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *UserListerMock) MinimockFinish() {
	if !m.MinimockListUserIDsDone() {
		m.t.Errorf("Expected call to UserListerMock.ListUserIDs")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *UserListerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *UserListerMock) minimockDone() bool {
	return m.MinimockListUserIDsDone()
}

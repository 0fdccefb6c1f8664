package mock

import (
	"context"
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/bills-bot/internal/entity/user"
)

// ProfileStorageMock implements the consumer's interface for tests.
type ProfileStorageMock struct {
	t minimock.Tester

	funcGetProfile          func(ctx context.Context, id int64) (p1 user.Profile, err error)
	inspectFuncGetProfile   func(ctx context.Context, id int64)
	afterGetProfileCounter  uint64
	beforeGetProfileCounter uint64
	GetProfileMock          mProfileStorageMockGetProfile
}

// NewProfileStorageMock returns a mock registered with the minimock controller.
func NewProfileStorageMock(t minimock.Tester) *ProfileStorageMock {
	m := &ProfileStorageMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetProfileMock = mProfileStorageMockGetProfile{mock: m}

	return m
}

type mProfileStorageMockGetProfile struct {
	mock               *ProfileStorageMock
	defaultExpectation *ProfileStorageMockGetProfileExpectation

	callArgs []*ProfileStorageMockGetProfileParams
	mutex    sync.RWMutex
}

// ProfileStorageMockGetProfileExpectation specifies expectation struct of the ProfileStorageMock.GetProfile
type ProfileStorageMockGetProfileExpectation struct {
	mock    *ProfileStorageMock
	params  *ProfileStorageMockGetProfileParams
	results *ProfileStorageMockGetProfileResults
	Counter uint64
}

// ProfileStorageMockGetProfileParams contains parameters of the ProfileStorageMock.GetProfile
type ProfileStorageMockGetProfileParams struct {
	ctx context.Context
	id  int64
}

// ProfileStorageMockGetProfileResults contains results of the ProfileStorageMock.GetProfile
type ProfileStorageMockGetProfileResults struct {
	p1  user.Profile
	err error
}

// Expect sets up expected params for ProfileStorageMock.GetProfile
func (mmGetProfile *mProfileStorageMockGetProfile) Expect(ctx context.Context, id int64) *mProfileStorageMockGetProfile {
	if mmGetProfile.mock.funcGetProfile != nil {
		mmGetProfile.mock.t.Fatalf("ProfileStorageMock.GetProfile mock is already set by Set")
	}

	if mmGetProfile.defaultExpectation == nil {
		mmGetProfile.defaultExpectation = &ProfileStorageMockGetProfileExpectation{}
	}

	mmGetProfile.defaultExpectation.params = &ProfileStorageMockGetProfileParams{ctx, id}
	return mmGetProfile
}

// Inspect accepts an inspector function that has same arguments as the ProfileStorageMock.GetProfile
func (mmGetProfile *mProfileStorageMockGetProfile) Inspect(f func(ctx context.Context, id int64)) *mProfileStorageMockGetProfile {
	if mmGetProfile.mock.inspectFuncGetProfile != nil {
		mmGetProfile.mock.t.Fatalf("Inspect function is already set for ProfileStorageMock.GetProfile")
	}

	mmGetProfile.mock.inspectFuncGetProfile = f

	return mmGetProfile
}

// Return sets up results that will be returned by ProfileStorageMock.GetProfile
func (mmGetProfile *mProfileStorageMockGetProfile) Return(p1 user.Profile, err error) *ProfileStorageMock {
	if mmGetProfile.mock.funcGetProfile != nil {
		mmGetProfile.mock.t.Fatalf("ProfileStorageMock.GetProfile mock is already set by Set")
	}

	if mmGetProfile.defaultExpectation == nil {
		mmGetProfile.defaultExpectation = &ProfileStorageMockGetProfileExpectation{mock: mmGetProfile.mock}
	}
	mmGetProfile.defaultExpectation.results = &ProfileStorageMockGetProfileResults{p1, err}
	return mmGetProfile.mock
}

// Set uses given function f to mock the ProfileStorageMock.GetProfile method
func (mmGetProfile *mProfileStorageMockGetProfile) Set(f func(ctx context.Context, id int64) (p1 user.Profile, err error)) *ProfileStorageMock {
	if mmGetProfile.defaultExpectation != nil {
		mmGetProfile.mock.t.Fatalf("Default expectation is already set for the ProfileStorageMock.GetProfile method")
	}

	mmGetProfile.mock.funcGetProfile = f
	return mmGetProfile.mock
}

// GetProfile implements the mocked interface
func (mmGetProfile *ProfileStorageMock) GetProfile(ctx context.Context, id int64) (p1 user.Profile, err error) {
	mm_atomic.AddUint64(&mmGetProfile.beforeGetProfileCounter, 1)
	defer mm_atomic.AddUint64(&mmGetProfile.afterGetProfileCounter, 1)

	if mmGetProfile.inspectFuncGetProfile != nil {
		mmGetProfile.inspectFuncGetProfile(ctx, id)
	}

	mm_params := &ProfileStorageMockGetProfileParams{ctx, id}

	mmGetProfile.GetProfileMock.mutex.Lock()
	mmGetProfile.GetProfileMock.callArgs = append(mmGetProfile.GetProfileMock.callArgs, mm_params)
	mmGetProfile.GetProfileMock.mutex.Unlock()

	if mmGetProfile.GetProfileMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetProfile.GetProfileMock.defaultExpectation.Counter, 1)
		mm_want := mmGetProfile.GetProfileMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmGetProfile.t.Errorf("ProfileStorageMock.GetProfile got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmGetProfile.GetProfileMock.defaultExpectation.results
		if mm_results == nil {
			mmGetProfile.t.Fatal("No results are set for the ProfileStorageMock.GetProfile")
		}
		return (*mm_results).p1, (*mm_results).err
	}
	if mmGetProfile.funcGetProfile != nil {
		return mmGetProfile.funcGetProfile(ctx, id)
	}
	mmGetProfile.t.Fatalf("Unexpected call to ProfileStorageMock.GetProfile. %v", mm_params)
	return
}

// GetProfileAfterCounter returns a count of finished ProfileStorageMock.GetProfile invocations
func (mmGetProfile *ProfileStorageMock) GetProfileAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetProfile.afterGetProfileCounter)
}

// GetProfileBeforeCounter returns a count of ProfileStorageMock.GetProfile invocations
func (mmGetProfile *ProfileStorageMock) GetProfileBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetProfile.beforeGetProfileCounter)
}

// Calls returns a list of arguments used in each call to ProfileStorageMock.GetProfile.
func (mmGetProfile *mProfileStorageMockGetProfile) Calls() []*ProfileStorageMockGetProfileParams {
	mmGetProfile.mutex.RLock()
	defer mmGetProfile.mutex.RUnlock()

	argCopy := make([]*ProfileStorageMockGetProfileParams, len(mmGetProfile.callArgs))
	copy(argCopy, mmGetProfile.callArgs)

	return argCopy
}

// MinimockGetProfileDone returns true if the expected call happened
func (m *ProfileStorageMock) MinimockGetProfileDone() bool {
	if m.GetProfileMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.GetProfileMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ProfileStorageMock) MinimockFinish() {
	if !m.MinimockGetProfileDone() {
		m.t.Errorf("Expected call to ProfileStorageMock.GetProfile")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ProfileStorageMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ProfileStorageMock) minimockDone() bool {
	return m.MinimockGetProfileDone()
}

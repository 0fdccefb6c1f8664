package mock

import (
	"context"
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/bills-bot/internal/api/digest"
)

// ReportAcceptorMock implements the consumer's interface for tests.
type ReportAcceptorMock struct {
	t minimock.Tester

	funcAcceptReport          func(ctx context.Context, report digest.Result) (err error)
	inspectFuncAcceptReport   func(ctx context.Context, report digest.Result)
	afterAcceptReportCounter  uint64
	beforeAcceptReportCounter uint64
	AcceptReportMock          mReportAcceptorMockAcceptReport
}

// NewReportAcceptorMock returns a mock registered with the minimock controller.
func NewReportAcceptorMock(t minimock.Tester) *ReportAcceptorMock {
	m := &ReportAcceptorMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AcceptReportMock = mReportAcceptorMockAcceptReport{mock: m}

	return m
}

type mReportAcceptorMockAcceptReport struct {
	mock               *ReportAcceptorMock
	defaultExpectation *ReportAcceptorMockAcceptReportExpectation

	callArgs []*ReportAcceptorMockAcceptReportParams
	mutex    sync.RWMutex
}

// ReportAcceptorMockAcceptReportExpectation specifies expectation struct of the ReportAcceptorMock.AcceptReport
type ReportAcceptorMockAcceptReportExpectation struct {
	mock    *ReportAcceptorMock
	params  *ReportAcceptorMockAcceptReportParams
	results *ReportAcceptorMockAcceptReportResults
	Counter uint64
}

// ReportAcceptorMockAcceptReportParams contains parameters of the ReportAcceptorMock.AcceptReport
type ReportAcceptorMockAcceptReportParams struct {
	ctx    context.Context
	report digest.Result
}

// ReportAcceptorMockAcceptReportResults contains results of the ReportAcceptorMock.AcceptReport
type ReportAcceptorMockAcceptReportResults struct {
	err error
}

// Expect sets up expected params for ReportAcceptorMock.AcceptReport
func (mmAcceptReport *mReportAcceptorMockAcceptReport) Expect(ctx context.Context, report digest.Result) *mReportAcceptorMockAcceptReport {
	if mmAcceptReport.mock.funcAcceptReport != nil {
		mmAcceptReport.mock.t.Fatalf("ReportAcceptorMock.AcceptReport mock is already set by Set")
	}

	if mmAcceptReport.defaultExpectation == nil {
		mmAcceptReport.defaultExpectation = &ReportAcceptorMockAcceptReportExpectation{}
	}

	mmAcceptReport.defaultExpectation.params = &ReportAcceptorMockAcceptReportParams{ctx, report}
	return mmAcceptReport
}

// Inspect accepts an inspector function that has same arguments as the ReportAcceptorMock.AcceptReport
func (mmAcceptReport *mReportAcceptorMockAcceptReport) Inspect(f func(ctx context.Context, report digest.Result)) *mReportAcceptorMockAcceptReport {
	if mmAcceptReport.mock.inspectFuncAcceptReport != nil {
		mmAcceptReport.mock.t.Fatalf("Inspect function is already set for ReportAcceptorMock.AcceptReport")
	}

	mmAcceptReport.mock.inspectFuncAcceptReport = f

	return mmAcceptReport
}

// Return sets up results that will be returned by ReportAcceptorMock.AcceptReport
func (mmAcceptReport *mReportAcceptorMockAcceptReport) Return(err error) *ReportAcceptorMock {
	if mmAcceptReport.mock.funcAcceptReport != nil {
		mmAcceptReport.mock.t.Fatalf("ReportAcceptorMock.AcceptReport mock is already set by Set")
	}

	if mmAcceptReport.defaultExpectation == nil {
		mmAcceptReport.defaultExpectation = &ReportAcceptorMockAcceptReportExpectation{mock: mmAcceptReport.mock}
	}
	mmAcceptReport.defaultExpectation.results = &ReportAcceptorMockAcceptReportResults{err}
	return mmAcceptReport.mock
}

// Set uses given function f to mock the ReportAcceptorMock.AcceptReport method
func (mmAcceptReport *mReportAcceptorMockAcceptReport) Set(f func(ctx context.Context, report digest.Result) (err error)) *ReportAcceptorMock {
	if mmAcceptReport.defaultExpectation != nil {
		mmAcceptReport.mock.t.Fatalf("Default expectation is already set for the ReportAcceptorMock.AcceptReport method")
	}

	mmAcceptReport.mock.funcAcceptReport = f
	return mmAcceptReport.mock
}

// AcceptReport implements the mocked interface
func (mmAcceptReport *ReportAcceptorMock) AcceptReport(ctx context.Context, report digest.Result) (err error) {
	mm_atomic.AddUint64(&mmAcceptReport.beforeAcceptReportCounter, 1)
	defer mm_atomic.AddUint64(&mmAcceptReport.afterAcceptReportCounter, 1)

	if mmAcceptReport.inspectFuncAcceptReport != nil {
		mmAcceptReport.inspectFuncAcceptReport(ctx, report)
	}

	mm_params := &ReportAcceptorMockAcceptReportParams{ctx, report}

	mmAcceptReport.AcceptReportMock.mutex.Lock()
	mmAcceptReport.AcceptReportMock.callArgs = append(mmAcceptReport.AcceptReportMock.callArgs, mm_params)
	mmAcceptReport.AcceptReportMock.mutex.Unlock()

	if mmAcceptReport.AcceptReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAcceptReport.AcceptReportMock.defaultExpectation.Counter, 1)
		mm_want := mmAcceptReport.AcceptReportMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmAcceptReport.t.Errorf("ReportAcceptorMock.AcceptReport got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmAcceptReport.AcceptReportMock.defaultExpectation.results
		if mm_results == nil {
			mmAcceptReport.t.Fatal("No results are set for the ReportAcceptorMock.AcceptReport")
		}
		return (*mm_results).err
	}
	if mmAcceptReport.funcAcceptReport != nil {
		return mmAcceptReport.funcAcceptReport(ctx, report)
	}
	mmAcceptReport.t.Fatalf("Unexpected call to ReportAcceptorMock.AcceptReport. %v", mm_params)
	return
}

// AcceptReportAfterCounter returns a count of finished ReportAcceptorMock.AcceptReport invocations
func (mmAcceptReport *ReportAcceptorMock) AcceptReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAcceptReport.afterAcceptReportCounter)
}

// AcceptReportBeforeCounter returns a count of ReportAcceptorMock.AcceptReport invocations
func (mmAcceptReport *ReportAcceptorMock) AcceptReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAcceptReport.beforeAcceptReportCounter)
}

// Calls returns a list of arguments used in each call to ReportAcceptorMock.AcceptReport.
func (mmAcceptReport *mReportAcceptorMockAcceptReport) Calls() []*ReportAcceptorMockAcceptReportParams {
	mmAcceptReport.mutex.RLock()
	defer mmAcceptReport.mutex.RUnlock()

	argCopy := make([]*ReportAcceptorMockAcceptReportParams, len(mmAcceptReport.callArgs))
	copy(argCopy, mmAcceptReport.callArgs)

	return argCopy
}

// MinimockAcceptReportDone returns true if the expected call happened
func (m *ReportAcceptorMock) MinimockAcceptReportDone() bool {
	if m.AcceptReportMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.AcceptReportMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportAcceptorMock) MinimockFinish() {
	if !m.MinimockAcceptReportDone() {
		m.t.Errorf("Expected call to ReportAcceptorMock.AcceptReport")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportAcceptorMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ReportAcceptorMock) minimockDone() bool {
	return m.MinimockAcceptReportDone()
}

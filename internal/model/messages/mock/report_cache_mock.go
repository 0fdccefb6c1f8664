package mock

import (
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements the consumer's interface for tests.
type ReportCacheMock struct {
	t minimock.Tester

	funcCacheReport          func(userID int64, option string, report string) (err error)
	inspectFuncCacheReport   func(userID int64, option string, report string)
	afterCacheReportCounter  uint64
	beforeCacheReportCounter uint64
	CacheReportMock          mReportCacheMockCacheReport

	funcGetReport          func(userID int64, option string) (s1 string, err error)
	inspectFuncGetReport   func(userID int64, option string)
	afterGetReportCounter  uint64
	beforeGetReportCounter uint64
	GetReportMock          mReportCacheMockGetReport

	funcInvalidateCache          func(userID int64, options []string) (err error)
	inspectFuncInvalidateCache   func(userID int64, options []string)
	afterInvalidateCacheCounter  uint64
	beforeInvalidateCacheCounter uint64
	InvalidateCacheMock          mReportCacheMockInvalidateCache
}

// NewReportCacheMock returns a mock registered with the minimock controller.
func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CacheReportMock = mReportCacheMockCacheReport{mock: m}
	m.GetReportMock = mReportCacheMockGetReport{mock: m}
	m.InvalidateCacheMock = mReportCacheMockInvalidateCache{mock: m}

	return m
}

type mReportCacheMockCacheReport struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockCacheReportExpectation

	callArgs []*ReportCacheMockCacheReportParams
	mutex    sync.RWMutex
}

// ReportCacheMockCacheReportExpectation specifies expectation struct of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockCacheReportParams
	results *ReportCacheMockCacheReportResults
	Counter uint64
}

// ReportCacheMockCacheReportParams contains parameters of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportParams struct {
	userID int64
	option string
	report string
}

// ReportCacheMockCacheReportResults contains results of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportResults struct {
	err error
}

// Expect sets up expected params for ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Expect(userID int64, option string, report string) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	if mmCacheReport.defaultExpectation == nil {
		mmCacheReport.defaultExpectation = &ReportCacheMockCacheReportExpectation{}
	}

	mmCacheReport.defaultExpectation.params = &ReportCacheMockCacheReportParams{userID, option, report}
	return mmCacheReport
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Inspect(f func(userID int64, option string, report string)) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.inspectFuncCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.CacheReport")
	}

	mmCacheReport.mock.inspectFuncCacheReport = f

	return mmCacheReport
}

// Return sets up results that will be returned by ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Return(err error) *ReportCacheMock {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	if mmCacheReport.defaultExpectation == nil {
		mmCacheReport.defaultExpectation = &ReportCacheMockCacheReportExpectation{mock: mmCacheReport.mock}
	}
	mmCacheReport.defaultExpectation.results = &ReportCacheMockCacheReportResults{err}
	return mmCacheReport.mock
}

// Set uses given function f to mock the ReportCacheMock.CacheReport method
func (mmCacheReport *mReportCacheMockCacheReport) Set(f func(userID int64, option string, report string) (err error)) *ReportCacheMock {
	if mmCacheReport.defaultExpectation != nil {
		mmCacheReport.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.CacheReport method")
	}

	mmCacheReport.mock.funcCacheReport = f
	return mmCacheReport.mock
}

// CacheReport implements the mocked interface
func (mmCacheReport *ReportCacheMock) CacheReport(userID int64, option string, report string) (err error) {
	mm_atomic.AddUint64(&mmCacheReport.beforeCacheReportCounter, 1)
	defer mm_atomic.AddUint64(&mmCacheReport.afterCacheReportCounter, 1)

	if mmCacheReport.inspectFuncCacheReport != nil {
		mmCacheReport.inspectFuncCacheReport(userID, option, report)
	}

	mm_params := &ReportCacheMockCacheReportParams{userID, option, report}

	mmCacheReport.CacheReportMock.mutex.Lock()
	mmCacheReport.CacheReportMock.callArgs = append(mmCacheReport.CacheReportMock.callArgs, mm_params)
	mmCacheReport.CacheReportMock.mutex.Unlock()

	if mmCacheReport.CacheReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCacheReport.CacheReportMock.defaultExpectation.Counter, 1)
		mm_want := mmCacheReport.CacheReportMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmCacheReport.t.Errorf("ReportCacheMock.CacheReport got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmCacheReport.CacheReportMock.defaultExpectation.results
		if mm_results == nil {
			mmCacheReport.t.Fatal("No results are set for the ReportCacheMock.CacheReport")
		}
		return (*mm_results).err
	}
	if mmCacheReport.funcCacheReport != nil {
		return mmCacheReport.funcCacheReport(userID, option, report)
	}
	mmCacheReport.t.Fatalf("Unexpected call to ReportCacheMock.CacheReport. %v", mm_params)
	return
}

// CacheReportAfterCounter returns a count of finished ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.afterCacheReportCounter)
}

// CacheReportBeforeCounter returns a count of ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.beforeCacheReportCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.CacheReport.
func (mmCacheReport *mReportCacheMockCacheReport) Calls() []*ReportCacheMockCacheReportParams {
	mmCacheReport.mutex.RLock()
	defer mmCacheReport.mutex.RUnlock()

	argCopy := make([]*ReportCacheMockCacheReportParams, len(mmCacheReport.callArgs))
	copy(argCopy, mmCacheReport.callArgs)

	return argCopy
}

// MinimockCacheReportDone returns true if the expected call happened
func (m *ReportCacheMock) MinimockCacheReportDone() bool {
	if m.CacheReportMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.CacheReportMock.defaultExpectation.Counter) > 0
}

type mReportCacheMockGetReport struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockGetReportExpectation

	callArgs []*ReportCacheMockGetReportParams
	mutex    sync.RWMutex
}

// ReportCacheMockGetReportExpectation specifies expectation struct of the ReportCacheMock.GetReport
type ReportCacheMockGetReportExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockGetReportParams
	results *ReportCacheMockGetReportResults
	Counter uint64
}

// ReportCacheMockGetReportParams contains parameters of the ReportCacheMock.GetReport
type ReportCacheMockGetReportParams struct {
	userID int64
	option string
}

// ReportCacheMockGetReportResults contains results of the ReportCacheMock.GetReport
type ReportCacheMockGetReportResults struct {
	s1  string
	err error
}

// Expect sets up expected params for ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Expect(userID int64, option string) *mReportCacheMockGetReport {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	if mmGetReport.defaultExpectation == nil {
		mmGetReport.defaultExpectation = &ReportCacheMockGetReportExpectation{}
	}

	mmGetReport.defaultExpectation.params = &ReportCacheMockGetReportParams{userID, option}
	return mmGetReport
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Inspect(f func(userID int64, option string)) *mReportCacheMockGetReport {
	if mmGetReport.mock.inspectFuncGetReport != nil {
		mmGetReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.GetReport")
	}

	mmGetReport.mock.inspectFuncGetReport = f

	return mmGetReport
}

// Return sets up results that will be returned by ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Return(s1 string, err error) *ReportCacheMock {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	if mmGetReport.defaultExpectation == nil {
		mmGetReport.defaultExpectation = &ReportCacheMockGetReportExpectation{mock: mmGetReport.mock}
	}
	mmGetReport.defaultExpectation.results = &ReportCacheMockGetReportResults{s1, err}
	return mmGetReport.mock
}

// Set uses given function f to mock the ReportCacheMock.GetReport method
func (mmGetReport *mReportCacheMockGetReport) Set(f func(userID int64, option string) (s1 string, err error)) *ReportCacheMock {
	if mmGetReport.defaultExpectation != nil {
		mmGetReport.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.GetReport method")
	}

	mmGetReport.mock.funcGetReport = f
	return mmGetReport.mock
}

// GetReport implements the mocked interface
func (mmGetReport *ReportCacheMock) GetReport(userID int64, option string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmGetReport.beforeGetReportCounter, 1)
	defer mm_atomic.AddUint64(&mmGetReport.afterGetReportCounter, 1)

	if mmGetReport.inspectFuncGetReport != nil {
		mmGetReport.inspectFuncGetReport(userID, option)
	}

	mm_params := &ReportCacheMockGetReportParams{userID, option}

	mmGetReport.GetReportMock.mutex.Lock()
	mmGetReport.GetReportMock.callArgs = append(mmGetReport.GetReportMock.callArgs, mm_params)
	mmGetReport.GetReportMock.mutex.Unlock()

	if mmGetReport.GetReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetReport.GetReportMock.defaultExpectation.Counter, 1)
		mm_want := mmGetReport.GetReportMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmGetReport.t.Errorf("ReportCacheMock.GetReport got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmGetReport.GetReportMock.defaultExpectation.results
		if mm_results == nil {
			mmGetReport.t.Fatal("No results are set for the ReportCacheMock.GetReport")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmGetReport.funcGetReport != nil {
		return mmGetReport.funcGetReport(userID, option)
	}
	mmGetReport.t.Fatalf("Unexpected call to ReportCacheMock.GetReport. %v", mm_params)
	return
}

// GetReportAfterCounter returns a count of finished ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.afterGetReportCounter)
}

// GetReportBeforeCounter returns a count of ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.beforeGetReportCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.GetReport.
func (mmGetReport *mReportCacheMockGetReport) Calls() []*ReportCacheMockGetReportParams {
	mmGetReport.mutex.RLock()
	defer mmGetReport.mutex.RUnlock()

	argCopy := make([]*ReportCacheMockGetReportParams, len(mmGetReport.callArgs))
	copy(argCopy, mmGetReport.callArgs)

	return argCopy
}

// MinimockGetReportDone returns true if the expected call happened
func (m *ReportCacheMock) MinimockGetReportDone() bool {
	if m.GetReportMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.GetReportMock.defaultExpectation.Counter) > 0
}

type mReportCacheMockInvalidateCache struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockInvalidateCacheExpectation

	callArgs []*ReportCacheMockInvalidateCacheParams
	mutex    sync.RWMutex
}

// ReportCacheMockInvalidateCacheExpectation specifies expectation struct of the ReportCacheMock.InvalidateCache
type ReportCacheMockInvalidateCacheExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockInvalidateCacheParams
	results *ReportCacheMockInvalidateCacheResults
	Counter uint64
}

// ReportCacheMockInvalidateCacheParams contains parameters of the ReportCacheMock.InvalidateCache
type ReportCacheMockInvalidateCacheParams struct {
	userID  int64
	options []string
}

// ReportCacheMockInvalidateCacheResults contains results of the ReportCacheMock.InvalidateCache
type ReportCacheMockInvalidateCacheResults struct {
	err error
}

// Expect sets up expected params for ReportCacheMock.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Expect(userID int64, options []string) *mReportCacheMockInvalidateCache {
	if mmInvalidateCache.mock.funcInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("ReportCacheMock.InvalidateCache mock is already set by Set")
	}

	if mmInvalidateCache.defaultExpectation == nil {
		mmInvalidateCache.defaultExpectation = &ReportCacheMockInvalidateCacheExpectation{}
	}

	mmInvalidateCache.defaultExpectation.params = &ReportCacheMockInvalidateCacheParams{userID, options}
	return mmInvalidateCache
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Inspect(f func(userID int64, options []string)) *mReportCacheMockInvalidateCache {
	if mmInvalidateCache.mock.inspectFuncInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.InvalidateCache")
	}

	mmInvalidateCache.mock.inspectFuncInvalidateCache = f

	return mmInvalidateCache
}

// Return sets up results that will be returned by ReportCacheMock.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Return(err error) *ReportCacheMock {
	if mmInvalidateCache.mock.funcInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("ReportCacheMock.InvalidateCache mock is already set by Set")
	}

	if mmInvalidateCache.defaultExpectation == nil {
		mmInvalidateCache.defaultExpectation = &ReportCacheMockInvalidateCacheExpectation{mock: mmInvalidateCache.mock}
	}
	mmInvalidateCache.defaultExpectation.results = &ReportCacheMockInvalidateCacheResults{err}
	return mmInvalidateCache.mock
}

// Set uses given function f to mock the ReportCacheMock.InvalidateCache method
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Set(f func(userID int64, options []string) (err error)) *ReportCacheMock {
	if mmInvalidateCache.defaultExpectation != nil {
		mmInvalidateCache.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.InvalidateCache method")
	}

	mmInvalidateCache.mock.funcInvalidateCache = f
	return mmInvalidateCache.mock
}

// InvalidateCache implements the mocked interface
func (mmInvalidateCache *ReportCacheMock) InvalidateCache(userID int64, options []string) (err error) {
	mm_atomic.AddUint64(&mmInvalidateCache.beforeInvalidateCacheCounter, 1)
	defer mm_atomic.AddUint64(&mmInvalidateCache.afterInvalidateCacheCounter, 1)

	if mmInvalidateCache.inspectFuncInvalidateCache != nil {
		mmInvalidateCache.inspectFuncInvalidateCache(userID, options)
	}

	mm_params := &ReportCacheMockInvalidateCacheParams{userID, options}

	mmInvalidateCache.InvalidateCacheMock.mutex.Lock()
	mmInvalidateCache.InvalidateCacheMock.callArgs = append(mmInvalidateCache.InvalidateCacheMock.callArgs, mm_params)
	mmInvalidateCache.InvalidateCacheMock.mutex.Unlock()

	if mmInvalidateCache.InvalidateCacheMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmInvalidateCache.InvalidateCacheMock.defaultExpectation.Counter, 1)
		mm_want := mmInvalidateCache.InvalidateCacheMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmInvalidateCache.t.Errorf("ReportCacheMock.InvalidateCache got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmInvalidateCache.InvalidateCacheMock.defaultExpectation.results
		if mm_results == nil {
			mmInvalidateCache.t.Fatal("No results are set for the ReportCacheMock.InvalidateCache")
		}
		return (*mm_results).err
	}
	if mmInvalidateCache.funcInvalidateCache != nil {
		return mmInvalidateCache.funcInvalidateCache(userID, options)
	}
	mmInvalidateCache.t.Fatalf("Unexpected call to ReportCacheMock.InvalidateCache. %v", mm_params)
	return
}

// InvalidateCacheAfterCounter returns a count of finished ReportCacheMock.InvalidateCache invocations
func (mmInvalidateCache *ReportCacheMock) InvalidateCacheAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidateCache.afterInvalidateCacheCounter)
}

// InvalidateCacheBeforeCounter returns a count of ReportCacheMock.InvalidateCache invocations
func (mmInvalidateCache *ReportCacheMock) InvalidateCacheBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidateCache.beforeInvalidateCacheCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.InvalidateCache.
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Calls() []*ReportCacheMockInvalidateCacheParams {
	mmInvalidateCache.mutex.RLock()
	defer mmInvalidateCache.mutex.RUnlock()

	argCopy := make([]*ReportCacheMockInvalidateCacheParams, len(mmInvalidateCache.callArgs))
	copy(argCopy, mmInvalidateCache.callArgs)

	return argCopy
}

// MinimockInvalidateCacheDone returns true if the expected call happened
func (m *ReportCacheMock) MinimockInvalidateCacheDone() bool {
	if m.InvalidateCacheMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.InvalidateCacheMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportCacheMock) MinimockFinish() {
	if !m.MinimockCacheReportDone() {
		m.t.Errorf("Expected call to ReportCacheMock.CacheReport")
	}
	if !m.MinimockGetReportDone() {
		m.t.Errorf("Expected call to ReportCacheMock.GetReport")
	}
	if !m.MinimockInvalidateCacheDone() {
		m.t.Errorf("Expected call to ReportCacheMock.InvalidateCache")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportCacheMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ReportCacheMock) minimockDone() bool {
	return m.MinimockCacheReportDone() &&
		m.MinimockGetReportDone() &&
		m.MinimockInvalidateCacheDone()
}

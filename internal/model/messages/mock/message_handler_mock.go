package mock

import (
	"context"
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// MessageHandlerMock implements the consumer's interface for tests.
type MessageHandlerMock struct {
	t minimock.Tester

	funcHandleMessage          func(ctx context.Context, text string, userID int64) (s1 string, err error)
	inspectFuncHandleMessage   func(ctx context.Context, text string, userID int64)
	afterHandleMessageCounter  uint64
	beforeHandleMessageCounter uint64
	HandleMessageMock          mMessageHandlerMockHandleMessage
}

// NewMessageHandlerMock returns a mock registered with the minimock controller.
func NewMessageHandlerMock(t minimock.Tester) *MessageHandlerMock {
	m := &MessageHandlerMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.HandleMessageMock = mMessageHandlerMockHandleMessage{mock: m}

	return m
}

type mMessageHandlerMockHandleMessage struct {
	mock               *MessageHandlerMock
	defaultExpectation *MessageHandlerMockHandleMessageExpectation

	callArgs []*MessageHandlerMockHandleMessageParams
	mutex    sync.RWMutex
}

// MessageHandlerMockHandleMessageExpectation specifies expectation struct of the MessageHandlerMock.HandleMessage
type MessageHandlerMockHandleMessageExpectation struct {
	mock    *MessageHandlerMock
	params  *MessageHandlerMockHandleMessageParams
	results *MessageHandlerMockHandleMessageResults
	Counter uint64
}

// MessageHandlerMockHandleMessageParams contains parameters of the MessageHandlerMock.HandleMessage
type MessageHandlerMockHandleMessageParams struct {
	ctx    context.Context
	text   string
	userID int64
}

// MessageHandlerMockHandleMessageResults contains results of the MessageHandlerMock.HandleMessage
type MessageHandlerMockHandleMessageResults struct {
	s1  string
	err error
}

// Expect sets up expected params for MessageHandlerMock.HandleMessage
func (mmHandleMessage *mMessageHandlerMockHandleMessage) Expect(ctx context.Context, text string, userID int64) *mMessageHandlerMockHandleMessage {
	if mmHandleMessage.mock.funcHandleMessage != nil {
		mmHandleMessage.mock.t.Fatalf("MessageHandlerMock.HandleMessage mock is already set by Set")
	}

	if mmHandleMessage.defaultExpectation == nil {
		mmHandleMessage.defaultExpectation = &MessageHandlerMockHandleMessageExpectation{}
	}

	mmHandleMessage.defaultExpectation.params = &MessageHandlerMockHandleMessageParams{ctx, text, userID}
	return mmHandleMessage
}

// Inspect accepts an inspector function that has same arguments as the MessageHandlerMock.HandleMessage
func (mmHandleMessage *mMessageHandlerMockHandleMessage) Inspect(f func(ctx context.Context, text string, userID int64)) *mMessageHandlerMockHandleMessage {
	if mmHandleMessage.mock.inspectFuncHandleMessage != nil {
		mmHandleMessage.mock.t.Fatalf("Inspect function is already set for MessageHandlerMock.HandleMessage")
	}

	mmHandleMessage.mock.inspectFuncHandleMessage = f

	return mmHandleMessage
}

// Return sets up results that will be returned by MessageHandlerMock.HandleMessage
func (mmHandleMessage *mMessageHandlerMockHandleMessage) Return(s1 string, err error) *MessageHandlerMock {
	if mmHandleMessage.mock.funcHandleMessage != nil {
		mmHandleMessage.mock.t.Fatalf("MessageHandlerMock.HandleMessage mock is already set by Set")
	}

	if mmHandleMessage.defaultExpectation == nil {
		mmHandleMessage.defaultExpectation = &MessageHandlerMockHandleMessageExpectation{mock: mmHandleMessage.mock}
	}
	mmHandleMessage.defaultExpectation.results = &MessageHandlerMockHandleMessageResults{s1, err}
	return mmHandleMessage.mock
}

// Set uses given function f to mock the MessageHandlerMock.HandleMessage method
func (mmHandleMessage *mMessageHandlerMockHandleMessage) Set(f func(ctx context.Context, text string, userID int64) (s1 string, err error)) *MessageHandlerMock {
	if mmHandleMessage.defaultExpectation != nil {
		mmHandleMessage.mock.t.Fatalf("Default expectation is already set for the MessageHandlerMock.HandleMessage method")
	}

	mmHandleMessage.mock.funcHandleMessage = f
	return mmHandleMessage.mock
}

// HandleMessage implements the mocked interface
func (mmHandleMessage *MessageHandlerMock) HandleMessage(ctx context.Context, text string, userID int64) (s1 string, err error) {
	mm_atomic.AddUint64(&mmHandleMessage.beforeHandleMessageCounter, 1)
	defer mm_atomic.AddUint64(&mmHandleMessage.afterHandleMessageCounter, 1)

	if mmHandleMessage.inspectFuncHandleMessage != nil {
		mmHandleMessage.inspectFuncHandleMessage(ctx, text, userID)
	}

	mm_params := &MessageHandlerMockHandleMessageParams{ctx, text, userID}

	mmHandleMessage.HandleMessageMock.mutex.Lock()
	mmHandleMessage.HandleMessageMock.callArgs = append(mmHandleMessage.HandleMessageMock.callArgs, mm_params)
	mmHandleMessage.HandleMessageMock.mutex.Unlock()

	if mmHandleMessage.HandleMessageMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmHandleMessage.HandleMessageMock.defaultExpectation.Counter, 1)
		mm_want := mmHandleMessage.HandleMessageMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmHandleMessage.t.Errorf("MessageHandlerMock.HandleMessage got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmHandleMessage.HandleMessageMock.defaultExpectation.results
		if mm_results == nil {
			mmHandleMessage.t.Fatal("No results are set for the MessageHandlerMock.HandleMessage")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmHandleMessage.funcHandleMessage != nil {
		return mmHandleMessage.funcHandleMessage(ctx, text, userID)
	}
	mmHandleMessage.t.Fatalf("Unexpected call to MessageHandlerMock.HandleMessage. %v", mm_params)
	return
}

// HandleMessageAfterCounter returns a count of finished MessageHandlerMock.HandleMessage invocations
func (mmHandleMessage *MessageHandlerMock) HandleMessageAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHandleMessage.afterHandleMessageCounter)
}

// HandleMessageBeforeCounter returns a count of MessageHandlerMock.HandleMessage invocations
func (mmHandleMessage *MessageHandlerMock) HandleMessageBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHandleMessage.beforeHandleMessageCounter)
}

// Calls returns a list of arguments used in each call to MessageHandlerMock.HandleMessage.
func (mmHandleMessage *mMessageHandlerMockHandleMessage) Calls() []*MessageHandlerMockHandleMessageParams {
	mmHandleMessage.mutex.RLock()
	defer mmHandleMessage.mutex.RUnlock()

	argCopy := make([]*MessageHandlerMockHandleMessageParams, len(mmHandleMessage.callArgs))
	copy(argCopy, mmHandleMessage.callArgs)

	return argCopy
}

// MinimockHandleMessageDone returns true if the expected call happened
func (m *MessageHandlerMock) MinimockHandleMessageDone() bool {
	if m.HandleMessageMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.HandleMessageMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageHandlerMock) MinimockFinish() {
	if !m.MinimockHandleMessageDone() {
		m.t.Errorf("Expected call to MessageHandlerMock.HandleMessage")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageHandlerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *MessageHandlerMock) minimockDone() bool {
	return m.MinimockHandleMessageDone()
}

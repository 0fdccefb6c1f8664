package mock

import (
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// MessageSenderMock implements the consumer's interface for tests.
type MessageSenderMock struct {
	t minimock.Tester

	funcSendMessage          func(text string, userID int64) (err error)
	inspectFuncSendMessage   func(text string, userID int64)
	afterSendMessageCounter  uint64
	beforeSendMessageCounter uint64
	SendMessageMock          mMessageSenderMockSendMessage
}

// NewMessageSenderMock returns a mock registered with the minimock controller.
func NewMessageSenderMock(t minimock.Tester) *MessageSenderMock {
	m := &MessageSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.SendMessageMock = mMessageSenderMockSendMessage{mock: m}

	return m
}

type mMessageSenderMockSendMessage struct {
	mock               *MessageSenderMock
	defaultExpectation *MessageSenderMockSendMessageExpectation

	callArgs []*MessageSenderMockSendMessageParams
	mutex    sync.RWMutex
}

// MessageSenderMockSendMessageExpectation specifies expectation struct of the MessageSenderMock.SendMessage
type MessageSenderMockSendMessageExpectation struct {
	mock    *MessageSenderMock
	params  *MessageSenderMockSendMessageParams
	results *MessageSenderMockSendMessageResults
	Counter uint64
}

// MessageSenderMockSendMessageParams contains parameters of the MessageSenderMock.SendMessage
type MessageSenderMockSendMessageParams struct {
	text   string
	userID int64
}

// MessageSenderMockSendMessageResults contains results of the MessageSenderMock.SendMessage
type MessageSenderMockSendMessageResults struct {
	err error
}

// Expect sets up expected params for MessageSenderMock.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Expect(text string, userID int64) *mMessageSenderMockSendMessage {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Set")
	}

	if mmSendMessage.defaultExpectation == nil {
		mmSendMessage.defaultExpectation = &MessageSenderMockSendMessageExpectation{}
	}

	mmSendMessage.defaultExpectation.params = &MessageSenderMockSendMessageParams{text, userID}
	return mmSendMessage
}

// Inspect accepts an inspector function that has same arguments as the MessageSenderMock.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Inspect(f func(text string, userID int64)) *mMessageSenderMockSendMessage {
	if mmSendMessage.mock.inspectFuncSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("Inspect function is already set for MessageSenderMock.SendMessage")
	}

	mmSendMessage.mock.inspectFuncSendMessage = f

	return mmSendMessage
}

// Return sets up results that will be returned by MessageSenderMock.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Return(err error) *MessageSenderMock {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Set")
	}

	if mmSendMessage.defaultExpectation == nil {
		mmSendMessage.defaultExpectation = &MessageSenderMockSendMessageExpectation{mock: mmSendMessage.mock}
	}
	mmSendMessage.defaultExpectation.results = &MessageSenderMockSendMessageResults{err}
	return mmSendMessage.mock
}

// Set uses given function f to mock the MessageSenderMock.SendMessage method
func (mmSendMessage *mMessageSenderMockSendMessage) Set(f func(text string, userID int64) (err error)) *MessageSenderMock {
	if mmSendMessage.defaultExpectation != nil {
		mmSendMessage.mock.t.Fatalf("Default expectation is already set for the MessageSenderMock.SendMessage method")
	}

	mmSendMessage.mock.funcSendMessage = f
	return mmSendMessage.mock
}

// SendMessage implements the mocked interface
func (mmSendMessage *MessageSenderMock) SendMessage(text string, userID int64) (err error) {
	mm_atomic.AddUint64(&mmSendMessage.beforeSendMessageCounter, 1)
	defer mm_atomic.AddUint64(&mmSendMessage.afterSendMessageCounter, 1)

	if mmSendMessage.inspectFuncSendMessage != nil {
		mmSendMessage.inspectFuncSendMessage(text, userID)
	}

	mm_params := &MessageSenderMockSendMessageParams{text, userID}

	mmSendMessage.SendMessageMock.mutex.Lock()
	mmSendMessage.SendMessageMock.callArgs = append(mmSendMessage.SendMessageMock.callArgs, mm_params)
	mmSendMessage.SendMessageMock.mutex.Unlock()

	if mmSendMessage.SendMessageMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSendMessage.SendMessageMock.defaultExpectation.Counter, 1)
		mm_want := mmSendMessage.SendMessageMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmSendMessage.t.Errorf("MessageSenderMock.SendMessage got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmSendMessage.SendMessageMock.defaultExpectation.results
		if mm_results == nil {
			mmSendMessage.t.Fatal("No results are set for the MessageSenderMock.SendMessage")
		}
		return (*mm_results).err
	}
	if mmSendMessage.funcSendMessage != nil {
		return mmSendMessage.funcSendMessage(text, userID)
	}
	mmSendMessage.t.Fatalf("Unexpected call to MessageSenderMock.SendMessage. %v", mm_params)
	return
}

// SendMessageAfterCounter returns a count of finished MessageSenderMock.SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.afterSendMessageCounter)
}

// SendMessageBeforeCounter returns a count of MessageSenderMock.SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.beforeSendMessageCounter)
}

// Calls returns a list of arguments used in each call to MessageSenderMock.SendMessage.
func (mmSendMessage *mMessageSenderMockSendMessage) Calls() []*MessageSenderMockSendMessageParams {
	mmSendMessage.mutex.RLock()
	defer mmSendMessage.mutex.RUnlock()

	argCopy := make([]*MessageSenderMockSendMessageParams, len(mmSendMessage.callArgs))
	copy(argCopy, mmSendMessage.callArgs)

	return argCopy
}

// MinimockSendMessageDone returns true if the expected call happened
func (m *MessageSenderMock) MinimockSendMessageDone() bool {
	if m.SendMessageMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.SendMessageMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageSenderMock) MinimockFinish() {
	if !m.MinimockSendMessageDone() {
		m.t.Errorf("Expected call to MessageSenderMock.SendMessage")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageSenderMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *MessageSenderMock) minimockDone() bool {
	return m.MinimockSendMessageDone()
}

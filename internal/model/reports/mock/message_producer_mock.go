package mock

import (
	"reflect"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// MessageProducerMock implements the consumer's interface for tests.
type MessageProducerMock struct {
	t minimock.Tester

	funcProduceMessage          func(key string, message []byte) (err error)
	inspectFuncProduceMessage   func(key string, message []byte)
	afterProduceMessageCounter  uint64
	beforeProduceMessageCounter uint64
	ProduceMessageMock          mMessageProducerMockProduceMessage
}

// NewMessageProducerMock returns a mock registered with the minimock controller.
func NewMessageProducerMock(t minimock.Tester) *MessageProducerMock {
	m := &MessageProducerMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ProduceMessageMock = mMessageProducerMockProduceMessage{mock: m}

	return m
}

type mMessageProducerMockProduceMessage struct {
	mock               *MessageProducerMock
	defaultExpectation *MessageProducerMockProduceMessageExpectation

	callArgs []*MessageProducerMockProduceMessageParams
	mutex    sync.RWMutex
}

// MessageProducerMockProduceMessageExpectation specifies expectation struct of the MessageProducerMock.ProduceMessage
type MessageProducerMockProduceMessageExpectation struct {
	mock    *MessageProducerMock
	params  *MessageProducerMockProduceMessageParams
	results *MessageProducerMockProduceMessageResults
	Counter uint64
}

// MessageProducerMockProduceMessageParams contains parameters of the MessageProducerMock.ProduceMessage
type MessageProducerMockProduceMessageParams struct {
	key     string
	message []byte
}

// MessageProducerMockProduceMessageResults contains results of the MessageProducerMock.ProduceMessage
type MessageProducerMockProduceMessageResults struct {
	err error
}

// Expect sets up expected params for MessageProducerMock.ProduceMessage
func (mmProduceMessage *mMessageProducerMockProduceMessage) Expect(key string, message []byte) *mMessageProducerMockProduceMessage {
	if mmProduceMessage.mock.funcProduceMessage != nil {
		mmProduceMessage.mock.t.Fatalf("MessageProducerMock.ProduceMessage mock is already set by Set")
	}

	if mmProduceMessage.defaultExpectation == nil {
		mmProduceMessage.defaultExpectation = &MessageProducerMockProduceMessageExpectation{}
	}

	mmProduceMessage.defaultExpectation.params = &MessageProducerMockProduceMessageParams{key, message}
	return mmProduceMessage
}

// Inspect accepts an inspector function that has same arguments as the MessageProducerMock.ProduceMessage
func (mmProduceMessage *mMessageProducerMockProduceMessage) Inspect(f func(key string, message []byte)) *mMessageProducerMockProduceMessage {
	if mmProduceMessage.mock.inspectFuncProduceMessage != nil {
		mmProduceMessage.mock.t.Fatalf("Inspect function is already set for MessageProducerMock.ProduceMessage")
	}

	mmProduceMessage.mock.inspectFuncProduceMessage = f

	return mmProduceMessage
}

// Return sets up results that will be returned by MessageProducerMock.ProduceMessage
func (mmProduceMessage *mMessageProducerMockProduceMessage) Return(err error) *MessageProducerMock {
	if mmProduceMessage.mock.funcProduceMessage != nil {
		mmProduceMessage.mock.t.Fatalf("MessageProducerMock.ProduceMessage mock is already set by Set")
	}

	if mmProduceMessage.defaultExpectation == nil {
		mmProduceMessage.defaultExpectation = &MessageProducerMockProduceMessageExpectation{mock: mmProduceMessage.mock}
	}
	mmProduceMessage.defaultExpectation.results = &MessageProducerMockProduceMessageResults{err}
	return mmProduceMessage.mock
}

// Set uses given function f to mock the MessageProducerMock.ProduceMessage method
func (mmProduceMessage *mMessageProducerMockProduceMessage) Set(f func(key string, message []byte) (err error)) *MessageProducerMock {
	if mmProduceMessage.defaultExpectation != nil {
		mmProduceMessage.mock.t.Fatalf("Default expectation is already set for the MessageProducerMock.ProduceMessage method")
	}

	mmProduceMessage.mock.funcProduceMessage = f
	return mmProduceMessage.mock
}

// ProduceMessage implements the mocked interface
func (mmProduceMessage *MessageProducerMock) ProduceMessage(key string, message []byte) (err error) {
	mm_atomic.AddUint64(&mmProduceMessage.beforeProduceMessageCounter, 1)
	defer mm_atomic.AddUint64(&mmProduceMessage.afterProduceMessageCounter, 1)

	if mmProduceMessage.inspectFuncProduceMessage != nil {
		mmProduceMessage.inspectFuncProduceMessage(key, message)
	}

	mm_params := &MessageProducerMockProduceMessageParams{key, message}

	mmProduceMessage.ProduceMessageMock.mutex.Lock()
	mmProduceMessage.ProduceMessageMock.callArgs = append(mmProduceMessage.ProduceMessageMock.callArgs, mm_params)
	mmProduceMessage.ProduceMessageMock.mutex.Unlock()

	if mmProduceMessage.ProduceMessageMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmProduceMessage.ProduceMessageMock.defaultExpectation.Counter, 1)
		mm_want := mmProduceMessage.ProduceMessageMock.defaultExpectation.params
		if mm_want != nil && !reflect.DeepEqual(*mm_want, *mm_params) {
			mmProduceMessage.t.Errorf("MessageProducerMock.ProduceMessage got unexpected parameters, want: %#v, got: %#v", *mm_want, *mm_params)
		}

		mm_results := mmProduceMessage.ProduceMessageMock.defaultExpectation.results
		if mm_results == nil {
			mmProduceMessage.t.Fatal("No results are set for the MessageProducerMock.ProduceMessage")
		}
		return (*mm_results).err
	}
	if mmProduceMessage.funcProduceMessage != nil {
		return mmProduceMessage.funcProduceMessage(key, message)
	}
	mmProduceMessage.t.Fatalf("Unexpected call to MessageProducerMock.ProduceMessage. %v", mm_params)
	return
}

// ProduceMessageAfterCounter returns a count of finished MessageProducerMock.ProduceMessage invocations
func (mmProduceMessage *MessageProducerMock) ProduceMessageAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmProduceMessage.afterProduceMessageCounter)
}

// ProduceMessageBeforeCounter returns a count of MessageProducerMock.ProduceMessage invocations
func (mmProduceMessage *MessageProducerMock) ProduceMessageBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmProduceMessage.beforeProduceMessageCounter)
}

// Calls returns a list of arguments used in each call to MessageProducerMock.ProduceMessage.
func (mmProduceMessage *mMessageProducerMockProduceMessage) Calls() []*MessageProducerMockProduceMessageParams {
	mmProduceMessage.mutex.RLock()
	defer mmProduceMessage.mutex.RUnlock()

	argCopy := make([]*MessageProducerMockProduceMessageParams, len(mmProduceMessage.callArgs))
	copy(argCopy, mmProduceMessage.callArgs)

	return argCopy
}

// MinimockProduceMessageDone returns true if the expected call happened
func (m *MessageProducerMock) MinimockProduceMessageDone() bool {
	if m.ProduceMessageMock.defaultExpectation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.ProduceMessageMock.defaultExpectation.Counter) > 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageProducerMock) MinimockFinish() {
	if !m.MinimockProduceMessageDone() {
		m.t.Errorf("Expected call to MessageProducerMock.ProduceMessage")
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageProducerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *MessageProducerMock) minimockDone() bool {
	return m.MinimockProduceMessageDone()
}

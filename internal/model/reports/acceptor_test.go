package reports

import (
	"context"
	"net"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/model/reports/mock"
)

const bufSize = 1024 * 1024

func startAcceptor(t *testing.T, acceptor reportAcceptor) *Sender {
	lis := bufconn.Listen(bufSize)
	server := newServer(lis, acceptor)
	go func() {
		_ = server.Serve()
	}()
	t.Cleanup(server.Shutdown)

	sender, err := NewSender("bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(sender.Close)
	return sender
}

func Test_OnSendReport_ShouldReachAcceptor(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	acceptor := mock.NewReportAcceptorMock(m)

	want := digest.Result{UserID: 123, Kind: "upcoming", Text: "You have the following bills coming up:"}
	acceptor.AcceptReportMock.Set(func(_ context.Context, report digest.Result) error {
		assert.Equal(m, want, report)
		return nil
	})

	sender := startAcceptor(t, acceptor)
	err := sender.SendReport(context.Background(), want)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), acceptor.AcceptReportAfterCounter())
}

func Test_OnAcceptorFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	acceptor := mock.NewReportAcceptorMock(m)

	acceptor.AcceptReportMock.Set(func(context.Context, digest.Result) error {
		return errors.New("telegram is down")
	})

	sender := startAcceptor(t, acceptor)
	err := sender.SendReport(context.Background(), digest.Result{UserID: 123})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "telegram is down")
}

func Test_OnDeliverReport_ShouldSendText(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect("You have no bills set up.", int64(123)).Return(nil)

	err := NewDeliverer(sender).AcceptReport(context.Background(), digest.Result{
		UserID: 123,
		Kind:   "no_bills",
		Text:   "You have no bills set up.",
	})

	assert.NoError(t, err)
}

func Test_OnDeliverFailedReport_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(digestFailedMessage, int64(123)).Return(nil)

	err := NewDeliverer(sender).AcceptReport(context.Background(), digest.Result{
		UserID: 123,
		Error:  "connection refused",
	})

	assert.NoError(t, err)
}

func Test_OnDeliverEmptyReport_ShouldSkip(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	err := NewDeliverer(sender).AcceptReport(context.Background(), digest.Result{UserID: 123, Kind: "no_bills"})

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), sender.SendMessageBeforeCounter())
}

func Test_OnDeliverySendFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Return(errors.New("blocked by user"))

	err := NewDeliverer(sender).AcceptReport(context.Background(), digest.Result{UserID: 123, Text: "hi"})

	assert.Error(t, err)
}

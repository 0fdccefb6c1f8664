package reports

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/logger"
)

const digestFailedMessage = "Sorry, I couldn't prepare your bills digest. Try /bills instead."

const (
	deliveryStatusSent    = "sent"
	deliveryStatusSkipped = "skipped"
	deliveryStatusFailed  = "failed"
)

type reportAcceptor interface {
	AcceptReport(ctx context.Context, report digest.Result) error
}

type AcceptorServer struct {
	acceptor reportAcceptor
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(addr string, acceptor reportAcceptor) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return newServer(lis, acceptor), nil
}

func newServer(lis net.Listener, acceptor reportAcceptor) *AcceptorServer {
	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		acceptor: acceptor,
		server:   rpcServer,
		lis:      lis,
	}
	digest.RegisterReportAcceptorServer(rpcServer, service)
	return service
}

func (s *AcceptorServer) Serve() error {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "serve grpc")
	}
	return nil
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) AcceptReport(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	report, err := digest.ResultFromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err = s.acceptor.AcceptReport(ctx, report); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &emptypb.Empty{}, nil
}

type messageSender interface {
	SendMessage(text string, userID int64) error
}

// Deliverer forwards accepted digests to the user's chat.
type Deliverer struct {
	sender messageSender
}

func NewDeliverer(sender messageSender) *Deliverer {
	return &Deliverer{sender: sender}
}

func (d *Deliverer) AcceptReport(_ context.Context, report digest.Result) error {
	logger.Info("AcceptReport",
		zap.Int64("userID", report.UserID),
		zap.String("kind", report.Kind),
		zap.Bool("success", report.Success()))

	text := report.Text
	if !report.Success() {
		logger.Error("reporter failed to build digest",
			zap.Int64("userID", report.UserID),
			zap.String("error", report.Error))
		text = digestFailedMessage
	}
	if text == "" {
		observeDelivery(deliveryStatusSkipped)
		return nil
	}

	if err := d.sender.SendMessage(text, report.UserID); err != nil {
		observeDelivery(deliveryStatusFailed)
		return errors.Wrap(err, "deliver report")
	}
	observeDelivery(deliveryStatusSent)
	return nil
}

package reports

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/logger"
)

type Sender struct {
	conn   *grpc.ClientConn
	client digest.ReportAcceptorClient
}

func NewSender(addr string, opts ...grpc.DialOption) (*Sender, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	client := digest.NewReportAcceptorClient(conn)
	return &Sender{conn, client}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) SendReport(ctx context.Context, report digest.Result) error {
	logger.Info("SendReport - start", zap.Int64("userID", report.UserID))
	defer logger.Info("SendReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "sendReport")
	defer span.Finish()

	in, err := report.ToStruct()
	if err != nil {
		return err
	}
	_, err = s.client.AcceptReport(ctx, in)
	return errors.Wrap(err, "send report")
}

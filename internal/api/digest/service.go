package digest

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName        = "billsbot.digest.ReportAcceptor"
	acceptReportMethod = "/" + serviceName + "/AcceptReport"
)

// ReportAcceptorServer receives digests pushed by the reporter.
type ReportAcceptorServer interface {
	AcceptReport(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error)
}

func RegisterReportAcceptorServer(s grpc.ServiceRegistrar, srv ReportAcceptorServer) {
	s.RegisterService(&reportAcceptorDesc, srv)
}

var reportAcceptorDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ReportAcceptorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AcceptReport",
			Handler:    acceptReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "digest.proto",
}

func acceptReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportAcceptorServer).AcceptReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: acceptReportMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportAcceptorServer).AcceptReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type ReportAcceptorClient interface {
	AcceptReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type reportAcceptorClient struct {
	cc grpc.ClientConnInterface
}

func NewReportAcceptorClient(cc grpc.ClientConnInterface) ReportAcceptorClient {
	return &reportAcceptorClient{cc}
}

func (c *reportAcceptorClient) AcceptReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, acceptReportMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

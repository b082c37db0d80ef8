// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: stats/v1/stats.proto

package statsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	UserStatsService_Query_FullMethodName    = "/stats.v1.UserStatsService/Query"
	UserStatsService_RawQuery_FullMethodName = "/stats.v1.UserStatsService/RawQuery"
)

// UserStatsServiceClient is the client API for UserStatsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UserStatsService answers cohort queries with a stream of matching users.
type UserStatsServiceClient interface {
	// Query streams every user matching the structured cohort query.
	Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error)
	// RawQuery streams every user matching an AIP-160 filter expression.
	// Supported fields: email, name (strings); created_at, last_visited_at,
	// last_watched_at (timestamps).
	RawQuery(ctx context.Context, in *RawQueryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error)
}

type userStatsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserStatsServiceClient(cc grpc.ClientConnInterface) UserStatsServiceClient {
	return &userStatsServiceClient{cc}
}

func (c *userStatsServiceClient) Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &UserStatsService_ServiceDesc.Streams[0], UserStatsService_Query_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[QueryRequest, User]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UserStatsService_QueryClient = grpc.ServerStreamingClient[User]

func (c *userStatsServiceClient) RawQuery(ctx context.Context, in *RawQueryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[User], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &UserStatsService_ServiceDesc.Streams[1], UserStatsService_RawQuery_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[RawQueryRequest, User]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UserStatsService_RawQueryClient = grpc.ServerStreamingClient[User]

// UserStatsServiceServer is the server API for UserStatsService service.
// All implementations must embed UnimplementedUserStatsServiceServer
// for forward compatibility.
//
// UserStatsService answers cohort queries with a stream of matching users.
type UserStatsServiceServer interface {
	// Query streams every user matching the structured cohort query.
	Query(*QueryRequest, grpc.ServerStreamingServer[User]) error
	// RawQuery streams every user matching an AIP-160 filter expression.
	// Supported fields: email, name (strings); created_at, last_visited_at,
	// last_watched_at (timestamps).
	RawQuery(*RawQueryRequest, grpc.ServerStreamingServer[User]) error
	mustEmbedUnimplementedUserStatsServiceServer()
}

// UnimplementedUserStatsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUserStatsServiceServer struct{}

func (UnimplementedUserStatsServiceServer) Query(*QueryRequest, grpc.ServerStreamingServer[User]) error {
	return status.Error(codes.Unimplemented, "method Query not implemented")
}
func (UnimplementedUserStatsServiceServer) RawQuery(*RawQueryRequest, grpc.ServerStreamingServer[User]) error {
	return status.Error(codes.Unimplemented, "method RawQuery not implemented")
}
func (UnimplementedUserStatsServiceServer) mustEmbedUnimplementedUserStatsServiceServer() {}
func (UnimplementedUserStatsServiceServer) testEmbeddedByValue()                          {}

// UnsafeUserStatsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UserStatsServiceServer will
// result in compilation errors.
type UnsafeUserStatsServiceServer interface {
	mustEmbedUnimplementedUserStatsServiceServer()
}

func RegisterUserStatsServiceServer(s grpc.ServiceRegistrar, srv UserStatsServiceServer) {
	// If the following call panics, it indicates UnimplementedUserStatsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UserStatsService_ServiceDesc, srv)
}

func _UserStatsService_Query_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(QueryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserStatsServiceServer).Query(m, &grpc.GenericServerStream[QueryRequest, User]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UserStatsService_QueryServer = grpc.ServerStreamingServer[User]

func _UserStatsService_RawQuery_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(RawQueryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserStatsServiceServer).RawQuery(m, &grpc.GenericServerStream[RawQueryRequest, User]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UserStatsService_RawQueryServer = grpc.ServerStreamingServer[User]

// UserStatsService_ServiceDesc is the grpc.ServiceDesc for UserStatsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UserStatsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stats.v1.UserStatsService",
	HandlerType: (*UserStatsServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Query",
			Handler:       _UserStatsService_Query_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "RawQuery",
			Handler:       _UserStatsService_RawQuery_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "stats/v1/stats.proto",
}

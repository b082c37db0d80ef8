// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: crm/v1/crm.proto

package crmv1

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
	CrmService_Welcome_FullMethodName = "/crm.v1.CrmService/Welcome"
	CrmService_Recall_FullMethodName  = "/crm.v1.CrmService/Recall"
	CrmService_Remind_FullMethodName  = "/crm.v1.CrmService/Remind"
)

// CrmServiceClient is the client API for CrmService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CrmService runs engagement campaigns against the user-statistics cohort.
type CrmServiceClient interface {
	// Welcome targets users who joined within the requested interval.
	Welcome(ctx context.Context, in *WelcomeRequest, opts ...grpc.CallOption) (*WelcomeResponse, error)
	// Recall targets users whose last visit falls within the requested interval.
	Recall(ctx context.Context, in *RecallRequest, opts ...grpc.CallOption) (*RecallResponse, error)
	// Remind targets users who watched recently and still have unfinished
	// contents; the payload carries their own pending content id lists.
	Remind(ctx context.Context, in *RemindRequest, opts ...grpc.CallOption) (*RemindResponse, error)
}

type crmServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCrmServiceClient(cc grpc.ClientConnInterface) CrmServiceClient {
	return &crmServiceClient{cc}
}

func (c *crmServiceClient) Welcome(ctx context.Context, in *WelcomeRequest, opts ...grpc.CallOption) (*WelcomeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WelcomeResponse)
	err := c.cc.Invoke(ctx, CrmService_Welcome_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *crmServiceClient) Recall(ctx context.Context, in *RecallRequest, opts ...grpc.CallOption) (*RecallResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecallResponse)
	err := c.cc.Invoke(ctx, CrmService_Recall_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *crmServiceClient) Remind(ctx context.Context, in *RemindRequest, opts ...grpc.CallOption) (*RemindResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemindResponse)
	err := c.cc.Invoke(ctx, CrmService_Remind_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CrmServiceServer is the server API for CrmService service.
// All implementations must embed UnimplementedCrmServiceServer
// for forward compatibility.
//
// CrmService runs engagement campaigns against the user-statistics cohort.
type CrmServiceServer interface {
	// Welcome targets users who joined within the requested interval.
	Welcome(context.Context, *WelcomeRequest) (*WelcomeResponse, error)
	// Recall targets users whose last visit falls within the requested interval.
	Recall(context.Context, *RecallRequest) (*RecallResponse, error)
	// Remind targets users who watched recently and still have unfinished
	// contents; the payload carries their own pending content id lists.
	Remind(context.Context, *RemindRequest) (*RemindResponse, error)
	mustEmbedUnimplementedCrmServiceServer()
}

// UnimplementedCrmServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCrmServiceServer struct{}

func (UnimplementedCrmServiceServer) Welcome(context.Context, *WelcomeRequest) (*WelcomeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Welcome not implemented")
}
func (UnimplementedCrmServiceServer) Recall(context.Context, *RecallRequest) (*RecallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Recall not implemented")
}
func (UnimplementedCrmServiceServer) Remind(context.Context, *RemindRequest) (*RemindResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Remind not implemented")
}
func (UnimplementedCrmServiceServer) mustEmbedUnimplementedCrmServiceServer() {}
func (UnimplementedCrmServiceServer) testEmbeddedByValue()                    {}

// UnsafeCrmServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CrmServiceServer will
// result in compilation errors.
type UnsafeCrmServiceServer interface {
	mustEmbedUnimplementedCrmServiceServer()
}

func RegisterCrmServiceServer(s grpc.ServiceRegistrar, srv CrmServiceServer) {
	// If the following call panics, it indicates UnimplementedCrmServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CrmService_ServiceDesc, srv)
}

func _CrmService_Welcome_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WelcomeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CrmServiceServer).Welcome(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CrmService_Welcome_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CrmServiceServer).Welcome(ctx, req.(*WelcomeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CrmService_Recall_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecallRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CrmServiceServer).Recall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CrmService_Recall_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CrmServiceServer).Recall(ctx, req.(*RecallRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CrmService_Remind_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemindRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CrmServiceServer).Remind(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CrmService_Remind_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CrmServiceServer).Remind(ctx, req.(*RemindRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CrmService_ServiceDesc is the grpc.ServiceDesc for CrmService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CrmService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "crm.v1.CrmService",
	HandlerType: (*CrmServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Welcome",
			Handler:    _CrmService_Welcome_Handler,
		},
		{
			MethodName: "Recall",
			Handler:    _CrmService_Recall_Handler,
		},
		{
			MethodName: "Remind",
			Handler:    _CrmService_Remind_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "crm/v1/crm.proto",
}

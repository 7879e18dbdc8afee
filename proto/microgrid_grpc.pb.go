// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: microgrid.proto

package microgrid_pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	Microgrid_ListComponents_FullMethodName  = "/microgrid.Microgrid/ListComponents"
	Microgrid_ListConnections_FullMethodName = "/microgrid.Microgrid/ListConnections"
	Microgrid_SetPowerActive_FullMethodName  = "/microgrid.Microgrid/SetPowerActive"
)

// MicrogridClient is the client API for Microgrid service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Microgrid is the control service exposed by a microgrid gateway.
type MicrogridClient interface {
	// ListComponents returns the components of the microgrid matching the filter.
	ListComponents(ctx context.Context, in *ComponentFilter, opts ...grpc.CallOption) (*ComponentList, error)
	// ListConnections returns the electrical connections between components
	// matching the filter.
	ListConnections(ctx context.Context, in *ConnectionFilter, opts ...grpc.CallOption) (*ConnectionList, error)
	// SetPowerActive sets the requested active power level of a component.
	// Sign convention: negative power_w means the component consumes power
	// (e.g. a battery charging), positive means it supplies power.
	SetPowerActive(ctx context.Context, in *PowerLevelParam, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type microgridClient struct {
	cc grpc.ClientConnInterface
}

func NewMicrogridClient(cc grpc.ClientConnInterface) MicrogridClient {
	return &microgridClient{cc}
}

func (c *microgridClient) ListComponents(ctx context.Context, in *ComponentFilter, opts ...grpc.CallOption) (*ComponentList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentList)
	err := c.cc.Invoke(ctx, Microgrid_ListComponents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *microgridClient) ListConnections(ctx context.Context, in *ConnectionFilter, opts ...grpc.CallOption) (*ConnectionList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConnectionList)
	err := c.cc.Invoke(ctx, Microgrid_ListConnections_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *microgridClient) SetPowerActive(ctx context.Context, in *PowerLevelParam, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Microgrid_SetPowerActive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MicrogridServer is the server API for Microgrid service.
// All implementations must embed UnimplementedMicrogridServer
// for forward compatibility.
//
// Microgrid is the control service exposed by a microgrid gateway.
type MicrogridServer interface {
	// ListComponents returns the components of the microgrid matching the filter.
	ListComponents(context.Context, *ComponentFilter) (*ComponentList, error)
	// ListConnections returns the electrical connections between components
	// matching the filter.
	ListConnections(context.Context, *ConnectionFilter) (*ConnectionList, error)
	// SetPowerActive sets the requested active power level of a component.
	// Sign convention: negative power_w means the component consumes power
	// (e.g. a battery charging), positive means it supplies power.
	SetPowerActive(context.Context, *PowerLevelParam) (*emptypb.Empty, error)
	mustEmbedUnimplementedMicrogridServer()
}

// UnimplementedMicrogridServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMicrogridServer struct{}

func (UnimplementedMicrogridServer) ListComponents(context.Context, *ComponentFilter) (*ComponentList, error) {
	return nil, status.Error(codes.Unimplemented, "method ListComponents not implemented")
}
func (UnimplementedMicrogridServer) ListConnections(context.Context, *ConnectionFilter) (*ConnectionList, error) {
	return nil, status.Error(codes.Unimplemented, "method ListConnections not implemented")
}
func (UnimplementedMicrogridServer) SetPowerActive(context.Context, *PowerLevelParam) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPowerActive not implemented")
}
func (UnimplementedMicrogridServer) mustEmbedUnimplementedMicrogridServer() {}
func (UnimplementedMicrogridServer) testEmbeddedByValue()                   {}

// UnsafeMicrogridServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MicrogridServer will
// result in compilation errors.
type UnsafeMicrogridServer interface {
	mustEmbedUnimplementedMicrogridServer()
}

func RegisterMicrogridServer(s grpc.ServiceRegistrar, srv MicrogridServer) {
	// If the following call panics, it indicates UnimplementedMicrogridServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Microgrid_ServiceDesc, srv)
}

func _Microgrid_ListComponents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComponentFilter)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MicrogridServer).ListComponents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Microgrid_ListComponents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MicrogridServer).ListComponents(ctx, req.(*ComponentFilter))
	}
	return interceptor(ctx, in, info, handler)
}

func _Microgrid_ListConnections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectionFilter)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MicrogridServer).ListConnections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Microgrid_ListConnections_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MicrogridServer).ListConnections(ctx, req.(*ConnectionFilter))
	}
	return interceptor(ctx, in, info, handler)
}

func _Microgrid_SetPowerActive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PowerLevelParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MicrogridServer).SetPowerActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Microgrid_SetPowerActive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MicrogridServer).SetPowerActive(ctx, req.(*PowerLevelParam))
	}
	return interceptor(ctx, in, info, handler)
}

// Microgrid_ServiceDesc is the grpc.ServiceDesc for Microgrid service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Microgrid_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "microgrid.Microgrid",
	HandlerType: (*MicrogridServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListComponents",
			Handler:    _Microgrid_ListComponents_Handler,
		},
		{
			MethodName: "ListConnections",
			Handler:    _Microgrid_ListConnections_Handler,
		},
		{
			MethodName: "SetPowerActive",
			Handler:    _Microgrid_SetPowerActive_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "microgrid.proto",
}

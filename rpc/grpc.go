// Package rpc exposes the mint lifecycle over gRPC.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MintServer is the server API for the Mint gRPC service.
//
// We intentionally use protobuf well-known types (wrappers and Struct) so
// this package does not require a protoc/codegen toolchain.
//
// Proto definition: mint.proto.
type MintServer interface {
	Request(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Fulfill(context.Context, *structpb.Struct) (*wrapperspb.UInt64Value, error)
	Finish(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	TokenURI(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error)
	Record(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error)
}

// UnimplementedMintServer can be embedded to have forward compatible implementations.
type UnimplementedMintServer struct{}

func (UnimplementedMintServer) Request(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Request not implemented")
}
func (UnimplementedMintServer) Fulfill(context.Context, *structpb.Struct) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Fulfill not implemented")
}
func (UnimplementedMintServer) Finish(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Finish not implemented")
}
func (UnimplementedMintServer) TokenURI(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method TokenURI not implemented")
}
func (UnimplementedMintServer) Record(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Record not implemented")
}

// RegisterMintServer registers the Mint service on a gRPC server.
func RegisterMintServer(s grpc.ServiceRegistrar, srv MintServer) {
	s.RegisterService(&Mint_ServiceDesc, srv)
}

// MintClient is the client API for the Mint gRPC service.
type MintClient interface {
	Request(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Fulfill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Finish(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	TokenURI(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Record(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type mintClient struct{ cc grpc.ClientConnInterface }

func NewMintClient(cc grpc.ClientConnInterface) MintClient { return &mintClient{cc: cc} }

func (c *mintClient) Request(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/nft.mint.v1.Mint/Request", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mintClient) Fulfill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	err := c.cc.Invoke(ctx, "/nft.mint.v1.Mint/Fulfill", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mintClient) Finish(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/nft.mint.v1.Mint/Finish", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mintClient) TokenURI(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/nft.mint.v1.Mint/TokenURI", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mintClient) Record(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/nft.mint.v1.Mint/Record", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Mint_Request_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MintServer).Request(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nft.mint.v1.Mint/Request"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MintServer).Request(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Mint_Fulfill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MintServer).Fulfill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nft.mint.v1.Mint/Fulfill"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MintServer).Fulfill(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Mint_Finish_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MintServer).Finish(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nft.mint.v1.Mint/Finish"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MintServer).Finish(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Mint_TokenURI_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MintServer).TokenURI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nft.mint.v1.Mint/TokenURI"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MintServer).TokenURI(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Mint_Record_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MintServer).Record(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nft.mint.v1.Mint/Record"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MintServer).Record(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// Mint_ServiceDesc is the grpc.ServiceDesc for the Mint service.
var Mint_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nft.mint.v1.Mint",
	HandlerType: (*MintServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Request", Handler: _Mint_Request_Handler},
		{MethodName: "Fulfill", Handler: _Mint_Fulfill_Handler},
		{MethodName: "Finish", Handler: _Mint_Finish_Handler},
		{MethodName: "TokenURI", Handler: _Mint_TokenURI_Handler},
		{MethodName: "Record", Handler: _Mint_Record_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mint.proto",
}

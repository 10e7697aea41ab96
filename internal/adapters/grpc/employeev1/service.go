// Package employeev1 は employee.v1.EmployeeService の gRPC サービス定義です。
//
// メッセージには protobuf の Well-Known Types を使います。社員は structpb.Struct で表現し、
// キーは snake_case (id, first_name, middle_name, last_name, salary, some_date, some_time,
// some_datetime, active) です。
package employeev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "employee.v1.EmployeeService"

const (
	ListEmployeesFullMethodName  = "/" + ServiceName + "/ListEmployees"
	GetEmployeeFullMethodName    = "/" + ServiceName + "/GetEmployee"
	CreateEmployeeFullMethodName = "/" + ServiceName + "/CreateEmployee"
	UpdateEmployeeFullMethodName = "/" + ServiceName + "/UpdateEmployee"
	DeleteEmployeeFullMethodName = "/" + ServiceName + "/DeleteEmployee"
)

// EmployeeServiceServer は EmployeeService のサーバー側インターフェースです。
type EmployeeServiceServer interface {
	ListEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetEmployee(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// RegisterEmployeeServiceServer は srv を gRPC サーバーへ登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeService_ServiceDesc, srv)
}

// EmployeeService_ServiceDesc は EmployeeService の grpc.ServiceDesc です。
var EmployeeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEmployees",
			Handler: unaryHandler(ListEmployeesFullMethodName, func() *emptypb.Empty { return new(emptypb.Empty) },
				EmployeeServiceServer.ListEmployees),
		},
		{
			MethodName: "GetEmployee",
			Handler: unaryHandler(GetEmployeeFullMethodName, func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
				EmployeeServiceServer.GetEmployee),
		},
		{
			MethodName: "CreateEmployee",
			Handler: unaryHandler(CreateEmployeeFullMethodName, func() *structpb.Struct { return new(structpb.Struct) },
				EmployeeServiceServer.CreateEmployee),
		},
		{
			MethodName: "UpdateEmployee",
			Handler: unaryHandler(UpdateEmployeeFullMethodName, func() *structpb.Struct { return new(structpb.Struct) },
				EmployeeServiceServer.UpdateEmployee),
		},
		{
			MethodName: "DeleteEmployee",
			Handler: unaryHandler(DeleteEmployeeFullMethodName, func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
				EmployeeServiceServer.DeleteEmployee),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	newReq func() Req,
	call func(EmployeeServiceServer, context.Context, Req) (Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmployeeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EmployeeServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EmployeeServiceClient は EmployeeService のクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeServiceClient は EmployeeServiceClient を生成します。
func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListEmployeesFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) GetEmployee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetEmployeeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) CreateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateEmployeeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, UpdateEmployeeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) DeleteEmployee(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteEmployeeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

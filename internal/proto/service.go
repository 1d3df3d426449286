package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "jobtracker.service.JobTrackerService"

const (
	JobTrackerService_Ping_FullMethodName               = "/" + ServiceName + "/Ping"
	JobTrackerService_Register_FullMethodName           = "/" + ServiceName + "/Register"
	JobTrackerService_Login_FullMethodName              = "/" + ServiceName + "/Login"
	JobTrackerService_LoginAnonymously_FullMethodName   = "/" + ServiceName + "/LoginAnonymously"
	JobTrackerService_RefreshToken_FullMethodName       = "/" + ServiceName + "/RefreshToken"
	JobTrackerService_Logout_FullMethodName             = "/" + ServiceName + "/Logout"
	JobTrackerService_ListApplications_FullMethodName   = "/" + ServiceName + "/ListApplications"
	JobTrackerService_CreateApplication_FullMethodName  = "/" + ServiceName + "/CreateApplication"
	JobTrackerService_GetApplication_FullMethodName     = "/" + ServiceName + "/GetApplication"
	JobTrackerService_UpdateApplication_FullMethodName  = "/" + ServiceName + "/UpdateApplication"
	JobTrackerService_DeleteApplication_FullMethodName  = "/" + ServiceName + "/DeleteApplication"
	JobTrackerService_ExportApplications_FullMethodName = "/" + ServiceName + "/ExportApplications"
)

// JobTrackerServiceClient is the client API for JobTrackerService.
type JobTrackerServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	LoginAnonymously(ctx context.Context, in *LoginAnonymouslyRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	CreateApplication(ctx context.Context, in *CreateApplicationRequest, opts ...grpc.CallOption) (*CreateApplicationResponse, error)
	GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error)
	UpdateApplication(ctx context.Context, in *UpdateApplicationRequest, opts ...grpc.CallOption) (*UpdateApplicationResponse, error)
	DeleteApplication(ctx context.Context, in *DeleteApplicationRequest, opts ...grpc.CallOption) (*DeleteApplicationResponse, error)
	ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error)
}

type jobTrackerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobTrackerServiceClient(cc grpc.ClientConnInterface) JobTrackerServiceClient {
	return &jobTrackerServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobTrackerServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, JobTrackerService_Ping_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, JobTrackerService_Register_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, JobTrackerService_Login_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) LoginAnonymously(ctx context.Context, in *LoginAnonymouslyRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, JobTrackerService_LoginAnonymously_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, JobTrackerService_RefreshToken_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, JobTrackerService_Logout_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	return invoke[ListApplicationsResponse](ctx, c.cc, JobTrackerService_ListApplications_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) CreateApplication(ctx context.Context, in *CreateApplicationRequest, opts ...grpc.CallOption) (*CreateApplicationResponse, error) {
	return invoke[CreateApplicationResponse](ctx, c.cc, JobTrackerService_CreateApplication_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error) {
	return invoke[GetApplicationResponse](ctx, c.cc, JobTrackerService_GetApplication_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) UpdateApplication(ctx context.Context, in *UpdateApplicationRequest, opts ...grpc.CallOption) (*UpdateApplicationResponse, error) {
	return invoke[UpdateApplicationResponse](ctx, c.cc, JobTrackerService_UpdateApplication_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) DeleteApplication(ctx context.Context, in *DeleteApplicationRequest, opts ...grpc.CallOption) (*DeleteApplicationResponse, error) {
	return invoke[DeleteApplicationResponse](ctx, c.cc, JobTrackerService_DeleteApplication_FullMethodName, in, opts)
}

func (c *jobTrackerServiceClient) ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error) {
	return invoke[ExportApplicationsResponse](ctx, c.cc, JobTrackerService_ExportApplications_FullMethodName, in, opts)
}

// JobTrackerServiceServer is the server API for JobTrackerService.
// Implementations must embed UnimplementedJobTrackerServiceServer.
type JobTrackerServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	LoginAnonymously(context.Context, *LoginAnonymouslyRequest) (*AuthResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	CreateApplication(context.Context, *CreateApplicationRequest) (*CreateApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	UpdateApplication(context.Context, *UpdateApplicationRequest) (*UpdateApplicationResponse, error)
	DeleteApplication(context.Context, *DeleteApplicationRequest) (*DeleteApplicationResponse, error)
	ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error)
	mustEmbedUnimplementedJobTrackerServiceServer()
}

// UnimplementedJobTrackerServiceServer answers every RPC with codes.Unimplemented.
type UnimplementedJobTrackerServiceServer struct{}

func (UnimplementedJobTrackerServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedJobTrackerServiceServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedJobTrackerServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedJobTrackerServiceServer) LoginAnonymously(context.Context, *LoginAnonymouslyRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoginAnonymously not implemented")
}
func (UnimplementedJobTrackerServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedJobTrackerServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedJobTrackerServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedJobTrackerServiceServer) CreateApplication(context.Context, *CreateApplicationRequest) (*CreateApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateApplication not implemented")
}
func (UnimplementedJobTrackerServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedJobTrackerServiceServer) UpdateApplication(context.Context, *UpdateApplicationRequest) (*UpdateApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateApplication not implemented")
}
func (UnimplementedJobTrackerServiceServer) DeleteApplication(context.Context, *DeleteApplicationRequest) (*DeleteApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteApplication not implemented")
}
func (UnimplementedJobTrackerServiceServer) ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportApplications not implemented")
}
func (UnimplementedJobTrackerServiceServer) mustEmbedUnimplementedJobTrackerServiceServer() {}

func RegisterJobTrackerServiceServer(s grpc.ServiceRegistrar, srv JobTrackerServiceServer) {
	s.RegisterService(&JobTrackerService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(JobTrackerServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JobTrackerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(JobTrackerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// JobTrackerService_ServiceDesc is the grpc.ServiceDesc for JobTrackerService.
var JobTrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JobTrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(JobTrackerService_Ping_FullMethodName, JobTrackerServiceServer.Ping)},
		{MethodName: "Register", Handler: unaryHandler(JobTrackerService_Register_FullMethodName, JobTrackerServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(JobTrackerService_Login_FullMethodName, JobTrackerServiceServer.Login)},
		{MethodName: "LoginAnonymously", Handler: unaryHandler(JobTrackerService_LoginAnonymously_FullMethodName, JobTrackerServiceServer.LoginAnonymously)},
		{MethodName: "RefreshToken", Handler: unaryHandler(JobTrackerService_RefreshToken_FullMethodName, JobTrackerServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unaryHandler(JobTrackerService_Logout_FullMethodName, JobTrackerServiceServer.Logout)},
		{MethodName: "ListApplications", Handler: unaryHandler(JobTrackerService_ListApplications_FullMethodName, JobTrackerServiceServer.ListApplications)},
		{MethodName: "CreateApplication", Handler: unaryHandler(JobTrackerService_CreateApplication_FullMethodName, JobTrackerServiceServer.CreateApplication)},
		{MethodName: "GetApplication", Handler: unaryHandler(JobTrackerService_GetApplication_FullMethodName, JobTrackerServiceServer.GetApplication)},
		{MethodName: "UpdateApplication", Handler: unaryHandler(JobTrackerService_UpdateApplication_FullMethodName, JobTrackerServiceServer.UpdateApplication)},
		{MethodName: "DeleteApplication", Handler: unaryHandler(JobTrackerService_DeleteApplication_FullMethodName, JobTrackerServiceServer.DeleteApplication)},
		{MethodName: "ExportApplications", Handler: unaryHandler(JobTrackerService_ExportApplications_FullMethodName, JobTrackerServiceServer.ExportApplications)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jobtracker.proto",
}

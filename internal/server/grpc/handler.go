package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/dmitrijs2005/jobtracker/internal/server/auth"
	"github.com/dmitrijs2005/jobtracker/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	s.logger.Info(ctx, "Registration request")

	session, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", session.User.ID)
	return authResponse(session), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return authResponse(session), nil
}

func (s *GRPCServer) LoginAnonymously(ctx context.Context, req *pb.LoginAnonymouslyRequest) (*pb.AuthResponse, error) {
	session, err := s.users.LoginAnonymously(ctx)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	s.logger.Info(ctx, "Guest signed in", "user_id", session.User.ID)
	return authResponse(session), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
		}
		return nil, s.mapError(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, id, req.RefreshToken); err != nil {
		return nil, s.mapError(ctx, err)
	}
	s.logger.Info(ctx, "Signed out", "user_id", id.UserID, "anonymous", id.Anonymous)
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListApplications(ctx context.Context, req *pb.ListApplicationsRequest) (*pb.ListApplicationsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.List(ctx, id.UserID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	out := make([]*pb.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, applicationToProto(a))
	}
	return &pb.ListApplicationsResponse{Applications: out}, nil
}

func (s *GRPCServer) CreateApplication(ctx context.Context, req *pb.CreateApplicationRequest) (*pb.CreateApplicationResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	appID, err := s.applications.Create(ctx, id.UserID, fieldsFromProto(req.GetFields()))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.CreateApplicationResponse{Id: appID}, nil
}

func (s *GRPCServer) GetApplication(ctx context.Context, req *pb.GetApplicationRequest) (*pb.GetApplicationResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	app, err := s.applications.Get(ctx, id.UserID, req.Id)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.GetApplicationResponse{Application: applicationToProto(app)}, nil
}

func (s *GRPCServer) UpdateApplication(ctx context.Context, req *pb.UpdateApplicationRequest) (*pb.UpdateApplicationResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.applications.Update(ctx, id.UserID, req.Id, fieldsFromProto(req.GetFields())); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.UpdateApplicationResponse{}, nil
}

func (s *GRPCServer) DeleteApplication(ctx context.Context, req *pb.DeleteApplicationRequest) (*pb.DeleteApplicationResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.applications.Delete(ctx, id.UserID, req.Id); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return &pb.DeleteApplicationResponse{}, nil
}

func (s *GRPCServer) ExportApplications(ctx context.Context, req *pb.ExportApplicationsRequest) (*pb.ExportApplicationsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.applications.Export(ctx, id.UserID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	if s.metrics != nil {
		s.metrics.ExportIssued()
	}
	s.logger.Info(ctx, "Export issued", "user_id", id.UserID, "key", res.Key, "count", res.Count)
	return &pb.ExportApplicationsResponse{
		Url:       res.URL,
		Key:       res.Key,
		Count:     int32(res.Count),
		ExpiresAt: timestamppb.New(res.ExpiresAt),
	}, nil
}

func identity(ctx context.Context) (auth.Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok || id.UserID == "" {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}

// mapError converts service errors into gRPC statuses. Validation
// failures keep their "field: reason" text so clients can rebuild them.
func (s *GRPCServer) mapError(ctx context.Context, err error) error {
	var ve *records.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func authResponse(session *services.Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		UserId:       session.User.ID,
		Email:        session.User.Email,
		IsAnonymous:  session.User.IsAnonymous,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}
}

func applicationToProto(a records.Application) *pb.Application {
	return &pb.Application{
		Id:          a.ID,
		CompanyName: a.CompanyName,
		Url:         a.URL,
		Status:      string(a.Status),
		DateApplied: timestamppb.New(a.DateApplied),
		CreatedAt:   timestamppb.New(a.CreatedAt),
	}
}

// fieldsFromProto leaves DateApplied zero when the timestamp is absent so
// that validation reports it as missing.
func fieldsFromProto(f *pb.ApplicationFields) records.Fields {
	var applied time.Time
	if ts := f.GetDateApplied(); ts != nil {
		applied = ts.AsTime()
	}
	return records.Fields{
		CompanyName: f.GetCompanyName(),
		URL:         f.GetUrl(),
		Status:      records.Status(f.GetStatus()),
		DateApplied: applied,
	}
}

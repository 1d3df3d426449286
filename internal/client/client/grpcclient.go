package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.JobTrackerServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(refreshToken string)
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// setTokens stores a new pair and notifies the listener outside the lock.
func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	fn := s.onTokens
	s.mu.Unlock()

	if fn != nil {
		fn(refresh)
	}
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)

	if err == nil || method == pb.JobTrackerService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}

	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())

	return invoker(withAccessToken(ctx, resp.GetAccessToken()), method, req, reply, cc, opts...)
}

// NewJobTrackerClient connects lazily to endpointURL. Extra dial options
// are applied after the defaults, so callers may override credentials or
// the dialer.
func NewJobTrackerClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewJobTrackerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) OnTokens(fn func(refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCClient) RefreshToken() string {
	_, refresh := s.tokens()
	return refresh
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) authenticated(resp *pb.AuthResponse) *models.Identity {
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return &models.Identity{
		UserID:      resp.GetUserId(),
		Email:       resp.GetEmail(),
		IsAnonymous: resp.GetIsAnonymous(),
	}
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (*models.Identity, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.authenticated(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.authenticated(resp), nil
}

func (s *GRPCClient) LoginAnonymously(ctx context.Context) (*models.Identity, error) {

	resp, err := s.client.LoginAnonymously(ctx, &pb.LoginAnonymouslyRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.authenticated(resp), nil
}

func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) error {

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Logout revokes the current refresh token on the server. Local tokens are
// cleared even when the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})

	s.setTokens("", "")

	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListApplications(ctx context.Context) ([]records.Application, error) {

	resp, err := s.client.ListApplications(ctx, &pb.ListApplicationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	apps := make([]records.Application, 0, len(resp.GetApplications()))
	for _, a := range resp.GetApplications() {
		apps = append(apps, applicationFromProto(a))
	}
	return apps, nil
}

func (s *GRPCClient) CreateApplication(ctx context.Context, f records.Fields) (string, error) {

	resp, err := s.client.CreateApplication(ctx, &pb.CreateApplicationRequest{Fields: fieldsToProto(f)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) GetApplication(ctx context.Context, id string) (records.Application, error) {

	resp, err := s.client.GetApplication(ctx, &pb.GetApplicationRequest{Id: id})
	if err != nil {
		return records.Application{}, s.mapError(err)
	}
	return applicationFromProto(resp.GetApplication()), nil
}

func (s *GRPCClient) UpdateApplication(ctx context.Context, id string, f records.Fields) error {

	_, err := s.client.UpdateApplication(ctx, &pb.UpdateApplicationRequest{Id: id, Fields: fieldsToProto(f)})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteApplication(ctx context.Context, id string) error {

	_, err := s.client.DeleteApplication(ctx, &pb.DeleteApplicationRequest{Id: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ExportApplications(ctx context.Context) (*models.Export, error) {

	resp, err := s.client.ExportApplications(ctx, &pb.ExportApplicationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Export{
		URL:       resp.GetUrl(),
		Key:       resp.Key,
		Count:     int(resp.GetCount()),
		ExpiresAt: asTime(resp.GetExpiresAt()),
	}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		if ve, ok := records.ParseValidationError(st.Message()); ok {
			return ve
		}
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func applicationFromProto(a *pb.Application) records.Application {
	return records.Application{
		ID:          a.GetId(),
		CompanyName: a.GetCompanyName(),
		URL:         a.GetUrl(),
		Status:      records.Status(a.GetStatus()),
		DateApplied: asTime(a.GetDateApplied()),
		CreatedAt:   asTime(a.GetCreatedAt()),
	}
}

func fieldsToProto(f records.Fields) *pb.ApplicationFields {
	return &pb.ApplicationFields{
		CompanyName: f.CompanyName,
		Url:         f.URL,
		Status:      string(f.Status),
		DateApplied: timestamppb.New(f.DateApplied),
	}
}

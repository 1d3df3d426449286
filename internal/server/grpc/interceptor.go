package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// protectedMethods require a valid access token.
var protectedMethods = map[string]struct{}{
	pb.JobTrackerService_Logout_FullMethodName:             {},
	pb.JobTrackerService_ListApplications_FullMethodName:   {},
	pb.JobTrackerService_CreateApplication_FullMethodName:  {},
	pb.JobTrackerService_GetApplication_FullMethodName:     {},
	pb.JobTrackerService_UpdateApplication_FullMethodName:  {},
	pb.JobTrackerService_DeleteApplication_FullMethodName:  {},
	pb.JobTrackerService_ExportApplications_FullMethodName: {},
}

// throttledMethods are the public auth RPCs guarded by the per-peer limiter.
var throttledMethods = map[string]struct{}{
	pb.JobTrackerService_Register_FullMethodName:         {},
	pb.JobTrackerService_Login_FullMethodName:            {},
	pb.JobTrackerService_LoginAnonymously_FullMethodName: {},
	pb.JobTrackerService_RefreshToken_FullMethodName:     {},
}

// IdentityFromContext returns the caller identity set by the access token interceptor.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, identityKey, id), req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := throttledMethods[info.FullMethod]; !ok || s.limiter == nil {
		return handler(ctx, req)
	}

	key := peerKey(ctx)
	if !s.limiter.Allow(key) {
		s.logger.Warn(ctx, "rate limit exceeded", "peer", key, "method", info.FullMethod)
		if s.metrics != nil {
			s.metrics.RateLimited(info.FullMethod)
		}
		return nil, status.Error(codes.ResourceExhausted, "too many requests")
	}
	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.metrics == nil {
		return handler(ctx, req)
	}
	done := s.metrics.RPCStarted(info.FullMethod)
	resp, err := handler(ctx, req)
	done(status.Code(err).String())
	return resp, err
}

// peerKey identifies the remote host, ignoring the ephemeral port.
func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	return hostOf(p.Addr.String())
}

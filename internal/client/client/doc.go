// Package client contains the CLI's transport to the JobTracker backend.
//
// # Overview
//
//  1. A transport-agnostic contract (Client) covering sign-in, guest
//     sessions, session resume, sign-out and the application record RPCs.
//  2. A gRPC implementation (GRPCClient) that keeps the token pair, injects
//     the access token via an interceptor, transparently refreshes expired
//     tokens and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file holding the saved session.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrInvalidArgument, ErrRateLimited,
// common.ErrorNotFound and common.ErrorAlreadyExists. InvalidArgument
// statuses carrying a field name come back as *records.ValidationError.
package client

// Package proto defines the wire contract of the JobTracker gRPC service:
// request/response messages, the service descriptor, and the typed client
// and server bindings.
//
// Messages are plain Go structs carried by a JSON codec registered with
// gRPC's encoding registry under the "json" content-subtype. Clients built
// with NewJobTrackerServiceClient select it on every call; the server picks
// it from the request's content-type. Timestamps use the protobuf
// well-known Timestamp type.
package proto

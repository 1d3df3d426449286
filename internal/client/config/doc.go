// Package config loads runtime configuration for the JobTracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. JOBTRACKER_-prefixed environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local session database file
//	-t int      request timeout (seconds)
//	-o string   export download directory
//	-v string   log level
//
// # JSON schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "jobtracker.db",
//	  "request_timeout": "10s",
//	  "export_dir": ".",
//	  "log_level": "warn"
//	}
package config

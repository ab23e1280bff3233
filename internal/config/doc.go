// Package config handles configuration loading for ethos-gateway.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${ETHOS_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	streams:
//	  heartbeat_interval: "10s"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  grpc_addr: "0.0.0.0:50051"  # gRPC streaming API
//	  http_addr: "0.0.0.0:8080"   # REST API and SSE streams
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${ETHOS_JWT_SECRET}"  # Required
//
// Streaming:
//
//	streams:
//	  hub_capacity: 256          # events buffered per conversation
//	  heartbeat_interval: "10s"  # SSE presence heartbeat
//
// Side-channel publishing:
//
//	nats:
//	  enabled: false
//	  url: "nats://localhost:4222"
//	  subject_prefix: "ethos.chat"
//
// Matrix bridge:
//
//	matrix:
//	  enabled: false
//	  homeserver: "https://matrix.org"
//	  user_id: "@ethos:matrix.org"
//	  access_token: "${ETHOS_MATRIX_TOKEN}"
//
// Tailscale:
//
//	tailscale:
//	  enabled: false
//	  hostname: "ethos-gateway"
//	  auth_key: "${TS_AUTHKEY}"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
// Load configuration from a path:
//
//	cfg, err := config.Load("/etc/ethos/gateway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config

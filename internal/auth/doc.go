// Package auth provides authentication for ethos-gateway.
//
// # Authentication Method
//
// All callers authenticate with JWT tokens signed with HS256 using the
// configured jwt_secret. A token carries a required "sub" claim plus
// optional "email" and "display_name" claims.
//
// # Identity Propagation
//
// Verified identities travel through request contexts:
//
//	ctx = WithAuth(ctx, authCtx)
//	authCtx := FromContext(ctx)
//
// The same AuthContext shape is used regardless of transport, so handler
// code never cares whether a request arrived over gRPC or HTTP.
//
// # Entry Points
//
// gRPC servers install UnaryInterceptor and StreamInterceptor, which read
// the "authorization" metadata key. HTTP routes use HTTPAuthMiddleware
// for Authorization-header bearer tokens, or QueryAuthMiddleware for SSE
// endpoints where EventSource clients can only pass a "token" query
// parameter.
//
// The gateway trusts a verified token completely: there is no principal
// database behind it, and membership checks happen against conversation
// participant lists downstream.
package auth

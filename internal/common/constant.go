package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// ContextKey is the type of values stored in request contexts by the server.
type ContextKey string

// UserIDKey holds the authenticated user id in a request context.
const UserIDKey ContextKey = "userID"

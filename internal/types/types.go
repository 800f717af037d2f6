package types

type contextKey string

// UserIDKey carries the authenticated user's id through request contexts.
const UserIDKey contextKey = "user_id"

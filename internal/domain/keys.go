package domain

// ContextKey is the typed key for request-scoped session values set by the
// auth middleware and read by usecases.
type ContextKey string

const (
	KeyUserID    ContextKey = "UserID"
	KeyUserEmail ContextKey = "UserEmail"
	KeyUserRole  ContextKey = "UserRole"
)

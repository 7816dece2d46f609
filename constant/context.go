package constant

type contextKey string

// OperatorIDKey holds the authenticated operator id taken from the bearer token.
const OperatorIDKey contextKey = "operator_id"

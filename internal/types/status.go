package types

// StatusClass classifies the outcome of a pipeline run independently of transport
type StatusClass string

const (
	StatusOK              StatusClass = "ok"
	StatusBadRequest      StatusClass = "bad-request"
	StatusClientAuthError StatusClass = "client-auth-error"
	StatusPaymentRequired StatusClass = "payment-required"
	StatusNotFound        StatusClass = "not-found"
	StatusServerError     StatusClass = "server-error"
)

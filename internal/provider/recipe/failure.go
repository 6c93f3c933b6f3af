package recipe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FailureKind classifies why a search call failed
type FailureKind int

const (
	KindUnknown FailureKind = iota
	KindUnauthorized
	KindQuotaExceeded
	KindForbidden
	KindNotFoundEndpoint
	KindTimeout
	KindConnectionError
	KindMalformedResponse
)

func (k FailureKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindForbidden:
		return "forbidden"
	case KindNotFoundEndpoint:
		return "not_found_endpoint"
	case KindTimeout:
		return "timeout"
	case KindConnectionError:
		return "connection_error"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Failure is a classified search failure
type Failure struct {
	Kind       FailureKind
	Detail     string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	return f.Detail
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// kindForStatus maps a non-2xx provider status code onto a failure kind
func kindForStatus(code int) FailureKind {
	switch code {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		return KindQuotaExceeded
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFoundEndpoint
	default:
		return KindUnknown
	}
}

// shortCircuits reports whether a failure kind is returned without touching the response
func shortCircuits(kind FailureKind) bool {
	return kind == KindUnauthorized || kind == KindForbidden || kind == KindNotFoundEndpoint
}

func statusFailure(provider string, code int) *Failure {
	kind := kindForStatus(code)
	var detail string
	switch kind {
	case KindUnauthorized:
		detail = fmt.Sprintf("Unauthorized: %s rejected the API key", provider)
	case KindQuotaExceeded:
		detail = fmt.Sprintf("Quota Exceeded: %s daily quota has been used up", provider)
	case KindForbidden:
		detail = fmt.Sprintf("Forbidden: the API key may not call the %s search endpoint", provider)
	case KindNotFoundEndpoint:
		detail = fmt.Sprintf("%s search endpoint not found", provider)
	default:
		detail = fmt.Sprintf("%s returned HTTP %d", provider, code)
	}
	return &Failure{Kind: kind, Detail: detail, StatusCode: code}
}

func transportFailure(provider string, err error) *Failure {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Failure{
			Kind:   KindTimeout,
			Detail: fmt.Sprintf("%s request timed out", provider),
			Err:    err,
		}
	}
	return &Failure{
		Kind:   KindConnectionError,
		Detail: fmt.Sprintf("could not connect to %s: %v", provider, err),
		Err:    err,
	}
}

func malformedFailure(provider string, err error) *Failure {
	return &Failure{
		Kind:   KindMalformedResponse,
		Detail: fmt.Sprintf("malformed response from %s: %v", provider, err),
		Err:    err,
	}
}

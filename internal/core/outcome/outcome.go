// Package outcome turns orchestrator results into one tagged value per
// request. It knows nothing about any transport; the HTTP adapter maps Kind
// to status codes.
package outcome

import (
	"github.com/juju/errors"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// Kind tags an Outcome.
type Kind int

const (
	KindOK Kind = iota
	KindCreated
	KindDeleted
	KindBadRequest
	KindNotFound
	KindRemoteFailure
	KindInfrastructureFailure
)

var kindNames = map[Kind]string{
	KindOK:                    "ok",
	KindCreated:               "created",
	KindDeleted:               "deleted",
	KindBadRequest:            "bad_request",
	KindNotFound:              "not_found",
	KindRemoteFailure:         "remote_failure",
	KindInfrastructureFailure: "infrastructure_failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsSuccess reports whether k is one of the success kinds.
func (k Kind) IsSuccess() bool {
	return k == KindOK || k == KindCreated || k == KindDeleted
}

// Outcome is the normalised result of one request.
type Outcome struct {
	Kind    Kind
	Payload any
}

// ValidationPayload is the body of a bad-request outcome.
type ValidationPayload struct {
	Errors string `json:"errors"`
}

// FailurePayload is the body of remote and infrastructure failures. Success
// is the string "false" on the wire.
type FailurePayload struct {
	Success string `json:"success"`
	Error   string `json:"error"`
}

// NotFoundPayload is the body of a not-found outcome.
type NotFoundPayload struct {
	Error string `json:"error"`
}

// OK wraps a success payload.
func OK(payload any) Outcome {
	return Outcome{Kind: KindOK, Payload: payload}
}

// Created wraps an optional created record.
func Created(payload any) Outcome {
	return Outcome{Kind: KindCreated, Payload: payload}
}

// Deleted carries no payload.
func Deleted() Outcome {
	return Outcome{Kind: KindDeleted}
}

// FromError classifies err into one of the failure kinds. Errors that fit
// none of the domain kinds are treated as infrastructure failures so that a
// request never ends without an outcome.
func FromError(err error) Outcome {
	var (
		verr *domain.ValidationError
		rerr *domain.RemoteOperationFailure
	)
	switch {
	case errors.As(err, &verr):
		return Outcome{Kind: KindBadRequest, Payload: ValidationPayload{Errors: verr.Error()}}
	case errors.Is(err, errors.NotFound):
		return Outcome{Kind: KindNotFound, Payload: NotFoundPayload{Error: err.Error()}}
	case errors.As(err, &rerr):
		return Outcome{Kind: KindRemoteFailure, Payload: FailurePayload{Success: "false", Error: rerr.Message}}
	default:
		return Outcome{Kind: KindInfrastructureFailure, Payload: FailurePayload{Success: "false", Error: err.Error()}}
	}
}

// Create translates the result of a container or profile creation.
func Create(err error) Outcome {
	if err != nil {
		return FromError(err)
	}
	return Created(nil)
}

// List translates a container listing.
func List(containers []domain.Container, err error) Outcome {
	if err != nil {
		return FromError(err)
	}
	return OK(containers)
}

// Show translates a single container lookup.
func Show(container *domain.Container, err error) Outcome {
	if err != nil {
		return FromError(err)
	}
	return OK(container)
}

// Destroy translates a container deletion.
func Destroy(err error) Outcome {
	if err != nil {
		return FromError(err)
	}
	return Deleted()
}

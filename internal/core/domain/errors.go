package domain

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// ValidationError holds the field messages of a rejected request, in rule
// declaration order.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns nil when there are no messages.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// Error joins the messages with a bare comma, e.g.
// "Container hostname can't be blank,Lxd host ipaddress can't be blank".
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

// Is lets errors.Is(err, errors.NotValid) match validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == errors.NotValid
}

// RemoteOperationFailure means the host answered, but reported that the
// operation failed. Message is the host's text, unmodified.
type RemoteOperationFailure struct {
	Op      string
	Message string
}

func (e *RemoteOperationFailure) Error() string {
	return e.Message
}

// InfrastructureFailure means the call to the host could not be completed:
// unreachable host, transport error, timeout or a crashed adapter.
type InfrastructureFailure struct {
	Op    string
	Cause error
}

func (e *InfrastructureFailure) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: host unavailable", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *InfrastructureFailure) Unwrap() error {
	return e.Cause
}

// NewContainerNotFound is returned by adapters when a host has no container
// with the given name.
func NewContainerNotFound(hostIP, hostname string) error {
	return errors.NotFoundf("container %q on host %s", hostname, hostIP)
}

// IsRemoteFailure reports whether err is, or wraps, a RemoteOperationFailure.
func IsRemoteFailure(err error) bool {
	var target *RemoteOperationFailure
	return errors.As(err, &target)
}

// IsInfrastructureFailure reports whether err is, or wraps, an
// InfrastructureFailure.
func IsInfrastructureFailure(err error) bool {
	var target *InfrastructureFailure
	return errors.As(err, &target)
}

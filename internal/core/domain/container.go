package domain

import (
	"strings"
	"time"
)

// ContainerStatus is the host-reported runtime state of a container.
type ContainerStatus string

const (
	StatusRunning ContainerStatus = "Running"
	StatusStopped ContainerStatus = "Stopped"
	StatusFrozen  ContainerStatus = "Frozen"
	StatusError   ContainerStatus = "Error"
	StatusUnknown ContainerStatus = "Unknown"
)

// ParseContainerStatus maps a status string reported by a host to a
// ContainerStatus. Anything unrecognised is StatusUnknown.
func ParseContainerStatus(s string) ContainerStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running":
		return StatusRunning
	case "stopped":
		return StatusStopped
	case "frozen":
		return StatusFrozen
	case "error":
		return StatusError
	default:
		return StatusUnknown
	}
}

// Container represents a container living on one LXD host.
type Container struct {
	Hostname  string          `json:"container_hostname"`
	BaseImage string          `json:"image,omitempty"`
	Status    ContainerStatus `json:"status"`
	IPAddress string          `json:"ipaddress,omitempty"`
	Profiles  []string        `json:"lxc_profiles"`
	CreatedAt time.Time       `json:"created_at"`
}

// LaunchResult is what a host answers to a launch request.
type LaunchResult struct {
	Success bool
	Error   string
}

// DestroyResult is what a host answers to a deletion request. Error carries
// the host's message when Success is false.
type DestroyResult struct {
	Success bool
	Error   string
}

// Package validation checks request parameters before anything reaches a
// host. Every function here is pure: the same input always produces the
// same result.
package validation

import (
	"net"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"golang.org/x/crypto/ssh"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// Errors collects field messages in the order the checks are declared.
type Errors struct {
	messages []string
}

// Blank records "<Field> can't be blank" when value is empty or whitespace.
// It reports whether the value was present.
func (e *Errors) Blank(field, value string) bool {
	if strings.TrimSpace(value) != "" {
		return true
	}
	e.Add(field, "can't be blank")
	return false
}

// Add records "<Field> <message>".
func (e *Errors) Add(field, message string) {
	e.messages = append(e.messages, Humanize(field)+" "+message)
}

// Err returns a *domain.ValidationError, or nil when nothing was recorded.
func (e *Errors) Err() error {
	return domain.NewValidationError(e.messages)
}

// Humanize turns a parameter name into a message label:
// "lxd_host_ipaddress" becomes "Lxd host ipaddress".
func Humanize(field string) string {
	s := strings.TrimSuffix(field, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// The hostname check precedes the ipaddress check in every container
// operation; callers rely on that message order.

// CreateContainer requires container_hostname and lxd_host_ipaddress. The
// image is optional.
func CreateContainer(req domain.ContainerRequest) error {
	var errs Errors
	errs.Blank("container_hostname", req.ContainerHostname)
	errs.Blank("lxd_host_ipaddress", req.LXDHostIPAddress)
	return errs.Err()
}

// DestroyContainer requires container_hostname and lxd_host_ipaddress.
func DestroyContainer(req domain.ContainerRequest) error {
	return CreateContainer(domain.ContainerRequest{
		ContainerHostname: req.ContainerHostname,
		LXDHostIPAddress:  req.LXDHostIPAddress,
	})
}

// ShowContainer requires container_hostname and lxd_host_ipaddress.
func ShowContainer(req domain.ContainerRequest) error {
	return DestroyContainer(req)
}

// ListContainers requires lxd_host_ipaddress. lxd_hostname is optional and
// only narrows the listing on clustered hosts.
func ListContainers(req domain.ContainerRequest) error {
	var errs Errors
	errs.Blank("lxd_host_ipaddress", req.LXDHostIPAddress)
	return errs.Err()
}

// RegisterHost requires hostname and a parseable ipaddress.
func RegisterHost(host domain.ContainerHost) error {
	var errs Errors
	errs.Blank("hostname", host.Hostname)
	if errs.Blank("ipaddress", host.IPAddress) && net.ParseIP(strings.TrimSpace(host.IPAddress)) == nil {
		errs.Add("ipaddress", "is invalid")
	}
	return errs.Err()
}

// CreateKeyPair requires a name. A supplied public key must be in
// authorized_keys format.
func CreateKeyPair(kp domain.KeyPair) error {
	var errs Errors
	errs.Blank("name", kp.Name)
	if strings.TrimSpace(kp.PublicKey) != "" {
		if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(kp.PublicKey)); err != nil {
			errs.Add("public_key", "is invalid")
		}
	}
	return errs.Err()
}

// UpdateKeyPair requires a name.
func UpdateKeyPair(kp domain.KeyPair) error {
	var errs Errors
	errs.Blank("name", kp.Name)
	return errs.Err()
}

// CreateProfile requires name and lxd_host_ipaddress. Limits are optional
// but must parse when given.
func CreateProfile(req domain.ProfileRequest) error {
	var errs Errors
	errs.Blank("name", req.Name)
	errs.Blank("lxd_host_ipaddress", req.LXDHostIPAddress)
	if req.MemoryLimit != "" {
		if n, err := units.RAMInBytes(req.MemoryLimit); err != nil || n <= 0 {
			errs.Add("memory_limit", "is invalid")
		}
	}
	if req.CPULimit != "" {
		if n, err := strconv.Atoi(req.CPULimit); err != nil || n <= 0 {
			errs.Add("cpu_limit", "is invalid")
		}
	}
	return errs.Err()
}

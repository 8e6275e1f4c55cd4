package domain

// ContainerRequest carries the parameters of every container-targeting
// operation. The host is addressed explicitly on each request.
type ContainerRequest struct {
	LXDHostIPAddress  string `json:"lxd_host_ipaddress" query:"lxd_host_ipaddress"`
	LXDHostname       string `json:"lxd_hostname" query:"lxd_hostname"`
	ContainerHostname string `json:"container_hostname" query:"container_hostname"`
	Image             string `json:"image" query:"image"`
}

// ProfileRequest creates a profile on one host.
type ProfileRequest struct {
	LXDHostIPAddress string `json:"lxd_host_ipaddress"`
	Profile
}

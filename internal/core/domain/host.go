package domain

import "time"

// ContainerHost is a registered LXD endpoint.
type ContainerHost struct {
	ID        int64     `json:"id"`
	IPAddress string    `json:"ipaddress"`
	Hostname  string    `json:"hostname"`
	CreatedAt time.Time `json:"created_at"`
}

// KeyPair is an SSH credential used to grant access to containers.
// PrivateKey is only populated on the record returned by a create that
// generated the pair; it is never persisted.
type KeyPair struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PublicKey   string    `json:"public_key"`
	PrivateKey  string    `json:"private_key,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile is a named bundle of container configuration.
type Profile struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	CPULimit    string            `json:"cpu_limit,omitempty"`
	MemoryLimit string            `json:"memory_limit,omitempty"`
	Config      map[string]string `json:"config,omitempty"`
}

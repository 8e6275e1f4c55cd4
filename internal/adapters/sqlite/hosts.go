package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/juju/errors"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// HostRepository implements ports.HostRepository.
type HostRepository struct {
	db *sql.DB
}

func (r *HostRepository) Create(ctx context.Context, host domain.ContainerHost) (domain.ContainerHost, error) {
	if host.CreatedAt.IsZero() {
		host.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO container_hosts (ipaddress, hostname, created_at) VALUES (?, ?, ?)`,
		host.IPAddress, host.Hostname, host.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ContainerHost{}, errors.AlreadyExistsf("container host %s", host.IPAddress)
	}
	if err != nil {
		return domain.ContainerHost{}, errors.Annotatef(err, "inserting container host %s", host.IPAddress)
	}
	if host.ID, err = res.LastInsertId(); err != nil {
		return domain.ContainerHost{}, errors.Trace(err)
	}
	return host, nil
}

func (r *HostRepository) List(ctx context.Context) ([]domain.ContainerHost, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ipaddress, hostname, created_at FROM container_hosts ORDER BY id`)
	if err != nil {
		return nil, errors.Annotate(err, "listing container hosts")
	}
	defer rows.Close()

	var hosts []domain.ContainerHost
	for rows.Next() {
		var h domain.ContainerHost
		if err := rows.Scan(&h.ID, &h.IPAddress, &h.Hostname, &h.CreatedAt); err != nil {
			return nil, errors.Trace(err)
		}
		hosts = append(hosts, h)
	}
	return hosts, errors.Trace(rows.Err())
}

func (r *HostRepository) Get(ctx context.Context, id int64) (domain.ContainerHost, error) {
	var h domain.ContainerHost
	err := r.db.QueryRowContext(ctx,
		`SELECT id, ipaddress, hostname, created_at FROM container_hosts WHERE id = ?`, id).
		Scan(&h.ID, &h.IPAddress, &h.Hostname, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return h, errors.NotFoundf("container host %d", id)
	}
	return h, errors.Trace(err)
}

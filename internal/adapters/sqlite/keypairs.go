package sqlite

import (
	"context"
	"database/sql"

	"github.com/juju/errors"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// KeyPairRepository implements ports.KeyPairRepository. Private keys are
// never written.
type KeyPairRepository struct {
	db *sql.DB
}

const keyPairColumns = `id, name, public_key, fingerprint, created_at, updated_at`

func scanKeyPair(row interface{ Scan(...any) error }) (domain.KeyPair, error) {
	var kp domain.KeyPair
	err := row.Scan(&kp.ID, &kp.Name, &kp.PublicKey, &kp.Fingerprint, &kp.CreatedAt, &kp.UpdatedAt)
	return kp, err
}

func (r *KeyPairRepository) Create(ctx context.Context, kp domain.KeyPair) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO key_pairs (`+keyPairColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		kp.ID, kp.Name, kp.PublicKey, kp.Fingerprint, kp.CreatedAt, kp.UpdatedAt)
	if isUniqueViolation(err) {
		return errors.AlreadyExistsf("key pair %q", kp.ID)
	}
	return errors.Annotatef(err, "inserting key pair %q", kp.ID)
}

func (r *KeyPairRepository) List(ctx context.Context) ([]domain.KeyPair, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+keyPairColumns+` FROM key_pairs ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Annotate(err, "listing key pairs")
	}
	defer rows.Close()

	var kps []domain.KeyPair
	for rows.Next() {
		kp, err := scanKeyPair(rows)
		if err != nil {
			return nil, errors.Trace(err)
		}
		kps = append(kps, kp)
	}
	return kps, errors.Trace(rows.Err())
}

func (r *KeyPairRepository) Get(ctx context.Context, id string) (domain.KeyPair, error) {
	kp, err := scanKeyPair(r.db.QueryRowContext(ctx, `SELECT `+keyPairColumns+` FROM key_pairs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return kp, errors.NotFoundf("key pair %q", id)
	}
	return kp, errors.Trace(err)
}

func (r *KeyPairRepository) Update(ctx context.Context, kp domain.KeyPair) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE key_pairs SET name = ?, updated_at = ? WHERE id = ?`, kp.Name, kp.UpdatedAt, kp.ID)
	if err != nil {
		return errors.Annotatef(err, "updating key pair %q", kp.ID)
	}
	return expectOneRow(res, kp.ID)
}

func (r *KeyPairRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM key_pairs WHERE id = ?`, id)
	if err != nil {
		return errors.Annotatef(err, "deleting key pair %q", id)
	}
	return expectOneRow(res, id)
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Trace(err)
	}
	if n == 0 {
		return errors.NotFoundf("key pair %q", id)
	}
	return nil
}

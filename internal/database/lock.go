package database

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
)

// LockID derives a stable advisory lock key from its parts
func LockID(parts ...string) int64 {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
	}
	hash := h.Sum(nil)

	var id int64
	for i := range 8 {
		id = (id << 8) | int64(hash[i])
	}

	return id
}

// AcquireXactLock blocks until the transaction holds the advisory lock.
// The lock is released when the transaction commits or rolls back.
func AcquireXactLock(ctx context.Context, tx *sql.Tx, lockID int64) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockID); err != nil {
		return fmt.Errorf("failed to acquire advisory lock: %w", err)
	}
	return nil
}

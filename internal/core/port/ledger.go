package port

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by Submit when no signing credential is
// configured. It is deterministic: every submission fails the same way until
// the process is restarted with a credential.
var ErrNoCredential = errors.New("ledger credential not configured")

// LedgerClient anchors digests on an external append-only ledger. Submission
// is best-effort with at most one attempt per event: callers are expected to
// treat any error as an absent reference and carry on. Lookup serves the
// independent verification path only and is never called while writing.
type LedgerClient interface {
	// Submit commits a digest to the ledger inside a zero-value transaction
	// note and returns the network-assigned transaction id.
	Submit(ctx context.Context, digest string) (string, error)
	// Lookup fetches a previously submitted transaction and decodes its note
	// back into the digest. Returns ErrNotFound for unknown or unindexed
	// references.
	Lookup(ctx context.Context, txid string) (string, error)
}

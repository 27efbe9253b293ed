package domain

// Anchor kinds. The value doubles as the "type" field of the canonical proof
// payload and as the related_kind column in the ledger_proofs index.
const (
	KindBatch        = "manufacturing_batch"
	KindDistribution = "distribution"
	KindActivity     = "daily_activity"
)

// Anchor is the evidence attached to a record after its digest was committed
// to the ledger. TxID is empty when the submission failed; that is a normal,
// expected outcome, not an error state.
type Anchor struct {
	Digest string
	TxID   string
}

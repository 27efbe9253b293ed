package configs

import "time"

// Algorand configures the ledger anchor client. The defaults point at the
// public Algonode testnet endpoints. ProofMnemonic is the 25-word secret of
// the anchoring account; when it is empty every ledger submission fails
// deterministically and records are persisted without a transaction id.
type Algorand struct {
	AlgodAddress   string `env:"ALGOD_ADDRESS" envDefault:"https://testnet-api.algonode.cloud"`
	AlgodToken     string `env:"ALGOD_TOKEN" envDefault:""`
	IndexerAddress string `env:"INDEXER_ADDRESS" envDefault:"https://testnet-idx.algonode.cloud"`
	IndexerToken   string `env:"INDEXER_TOKEN" envDefault:""`
	ProofMnemonic  string `env:"PROOF_MNEMONIC" envDefault:""`
	// SubmitTimeout bounds each anchoring attempt. A timeout counts as a
	// normal submission failure.
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"10s"`
}

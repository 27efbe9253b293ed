package algorand

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cuptrace/internal/config/configs"
	"cuptrace/internal/core/port"
)

// TestSubmitWithoutCredential verifies the deterministic failure mode: no
// mnemonic configured means every submission fails immediately, before any
// network round-trip.
func TestSubmitWithoutCredential(t *testing.T) {
	c, err := NewClient(configs.Algorand{
		AlgodAddress:   "http://localhost:4001",
		IndexerAddress: "http://localhost:8980",
		SubmitTimeout:  time.Second,
	})
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "deadbeef")
	require.ErrorIs(t, err, port.ErrNoCredential)
}

func TestNewClientRejectsBadMnemonic(t *testing.T) {
	_, err := NewClient(configs.Algorand{
		AlgodAddress:   "http://localhost:4001",
		IndexerAddress: "http://localhost:8980",
		ProofMnemonic:  "not a valid twenty five word mnemonic",
		SubmitTimeout:  time.Second,
	})
	require.Error(t, err)
}

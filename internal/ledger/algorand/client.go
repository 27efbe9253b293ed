// Package algorand implements the ledger anchor client against an Algorand
// node and indexer. A digest is committed as the note of a zero-amount
// payment from the configured account to itself; the indexer read-back path
// decodes the note again for independent verification.
package algorand

import (
	"context"
	"fmt"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/indexer"
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/transaction"

	"cuptrace/internal/config/configs"
	"cuptrace/internal/core/port"
)

// Client implements port.LedgerClient. A Client without a configured
// mnemonic can still serve lookups, but every Submit fails with
// port.ErrNoCredential.
type Client struct {
	algod   *algod.Client
	indexer *indexer.Client
	account crypto.Account
	signing bool
	timeout time.Duration
}

// NewClient builds algod and indexer clients from configuration and, when a
// proof mnemonic is set, derives the signing account from it.
func NewClient(cfg configs.Algorand) (*Client, error) {
	ac, err := algod.MakeClient(cfg.AlgodAddress, cfg.AlgodToken)
	if err != nil {
		return nil, fmt.Errorf("algod client: %w", err)
	}
	ic, err := indexer.MakeClient(cfg.IndexerAddress, cfg.IndexerToken)
	if err != nil {
		return nil, fmt.Errorf("indexer client: %w", err)
	}
	c := &Client{algod: ac, indexer: ic, timeout: cfg.SubmitTimeout}
	if cfg.ProofMnemonic != "" {
		sk, err := mnemonic.ToPrivateKey(cfg.ProofMnemonic)
		if err != nil {
			return nil, fmt.Errorf("decode proof mnemonic: %w", err)
		}
		acct, err := crypto.AccountFromPrivateKey(sk)
		if err != nil {
			return nil, fmt.Errorf("derive proof account: %w", err)
		}
		c.account = acct
		c.signing = true
	}
	return c, nil
}

// Submit broadcasts the digest as the note of a zero-amount self-payment and
// returns the assigned transaction id. Exactly one attempt is made, bounded
// by the configured timeout; a timeout is indistinguishable from any other
// failure to the caller.
func (c *Client) Submit(ctx context.Context, digest string) (string, error) {
	if !c.signing {
		return "", port.ErrNoCredential
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sp, err := c.algod.SuggestedParams().Do(ctx)
	if err != nil {
		return "", fmt.Errorf("suggested params: %w", err)
	}
	addr := c.account.Address.String()
	txn, err := transaction.MakePaymentTxn(addr, addr, 0, []byte(digest), "", sp)
	if err != nil {
		return "", fmt.Errorf("build payment txn: %w", err)
	}
	_, stx, err := crypto.SignTransaction(c.account.PrivateKey, txn)
	if err != nil {
		return "", fmt.Errorf("sign txn: %w", err)
	}
	txid, err := c.algod.SendRawTransaction(stx).Do(ctx)
	if err != nil {
		return "", fmt.Errorf("broadcast txn: %w", err)
	}
	return txid, nil
}

// Lookup fetches the transaction by id from the indexer and returns its note
// decoded as the original digest text. An unknown or note-less transaction
// yields port.ErrNotFound.
func (c *Client) Lookup(ctx context.Context, txid string) (string, error) {
	resp, err := c.indexer.SearchForTransactions().TXID(txid).Do(ctx)
	if err != nil {
		return "", fmt.Errorf("search transactions: %w", err)
	}
	if len(resp.Transactions) == 0 {
		return "", port.ErrNotFound
	}
	note := resp.Transactions[0].Note
	if len(note) == 0 {
		return "", port.ErrNotFound
	}
	return string(note), nil
}

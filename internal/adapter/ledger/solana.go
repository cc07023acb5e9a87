// Package ledger mints SPL tokens on Solana with a single mint authority.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

const (
	defaultPollInterval   = 500 * time.Millisecond
	defaultConfirmTimeout = 60 * time.Second
)

// errNotSent marks failures that happened before the network accepted the transaction.
var errNotSent = errors.New("transaction not sent")

type Ledger struct {
	log            *slog.Logger
	rpc            RPCClient
	mint           solana.PublicKey
	authority      solana.PrivateKey
	pollInterval   time.Duration
	confirmTimeout time.Duration
}

type Option func(*Ledger)

func WithPollInterval(d time.Duration) Option {
	return func(l *Ledger) { l.pollInterval = d }
}

func WithConfirmTimeout(d time.Duration) Option {
	return func(l *Ledger) { l.confirmTimeout = d }
}

func New(log *slog.Logger, client RPCClient, mint string, authority solana.PrivateKey, opts ...Option) (*Ledger, error) {
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address %q: %w", mint, err)
	}
	if len(authority) != 64 {
		return nil, fmt.Errorf("invalid mint authority key length %d", len(authority))
	}
	l := &Ledger{
		log:            log,
		rpc:            client,
		mint:           mintKey,
		authority:      authority,
		pollInterval:   defaultPollInterval,
		confirmTimeout: defaultConfirmTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Dial connects to rpcURL and loads the authority from a solana-keygen JSON file.
func Dial(log *slog.Logger, rpcURL, mint, authorityFile string, opts ...Option) (*Ledger, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(authorityFile)
	if err != nil {
		return nil, fmt.Errorf("load mint authority %s: %w", authorityFile, err)
	}
	return New(log, rpc.New(rpcURL), mint, key, opts...)
}

func (l *Ledger) Authority() solana.PublicKey { return l.authority.PublicKey() }

// ResolveRecipientAccount returns the wallet's associated token account for the mint,
// creating it first when it does not exist yet.
func (l *Ledger) ResolveRecipientAccount(ctx context.Context, wallet string) (string, error) {
	owner, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrInvalidWallet, err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(owner, l.mint)
	if err != nil {
		return "", fmt.Errorf("derive associated token account: %w", err)
	}

	_, err = l.rpc.GetAccountInfoWithOpts(ctx, ata, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentConfirmed})
	switch {
	case err == nil:
		return ata.String(), nil
	case !errors.Is(err, rpc.ErrNotFound):
		return "", fmt.Errorf("get account %s: %w", ata, err)
	}

	sig, err := l.submit(ctx, createIdempotentATA(l.Authority(), owner, l.mint, ata))
	if err != nil {
		return "", fmt.Errorf("create account %s: %w", ata, err)
	}
	if err := l.waitConfirmed(ctx, sig); err != nil {
		return "", fmt.Errorf("create account %s: %w", ata, err)
	}
	l.log.Info("created recipient token account", "wallet", wallet, "account", ata.String(), "tx", sig.String())
	return ata.String(), nil
}

// Mint sends one MintTo transaction and waits for confirmed commitment.
// ErrMintNotApplied means the tokens were certainly not minted; any other error leaves the
// outcome unknown.
func (l *Ledger) Mint(ctx context.Context, account string, baseUnits uint64) (string, error) {
	dest, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return "", fmt.Errorf("%w: destination %q: %v", service.ErrMintNotApplied, account, err)
	}
	ix, err := token.NewMintToInstructionBuilder().
		SetAmount(baseUnits).
		SetMintAccount(l.mint).
		SetDestinationAccount(dest).
		SetAuthorityAccount(l.Authority()).
		ValidateAndBuild()
	if err != nil {
		return "", fmt.Errorf("%w: build mint instruction: %v", service.ErrMintNotApplied, err)
	}

	sig, err := l.submit(ctx, ix)
	if err != nil {
		if errors.Is(err, errNotSent) {
			return "", fmt.Errorf("%w: %v", service.ErrMintNotApplied, err)
		}
		return "", err
	}
	if err := l.waitConfirmed(ctx, sig); err != nil {
		return sig.String(), err
	}
	return sig.String(), nil
}

func (l *Ledger) submit(ctx context.Context, instructions ...solana.Instruction) (solana.Signature, error) {
	recent, err := l.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: get blockhash: %v", errNotSent, err)
	}
	if recent == nil || recent.Value == nil {
		return solana.Signature{}, fmt.Errorf("%w: empty blockhash response", errNotSent)
	}

	payer := l.Authority()
	tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: build transaction: %v", errNotSent, err)
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer) {
			return &l.authority
		}
		return nil
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("%w: sign transaction: %v", errNotSent, err)
	}

	sig, err := l.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{PreflightCommitment: rpc.CommitmentConfirmed})
	if err != nil {
		// A JSON-RPC error is the node refusing the transaction (preflight).
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return solana.Signature{}, fmt.Errorf("%w: %v", errNotSent, err)
		}
		return solana.Signature{}, fmt.Errorf("send transaction %s: %w", tx.Signatures[0], err)
	}
	return sig, nil
}

// waitConfirmed polls the signature status until it reaches confirmed commitment.
func (l *Ledger) waitConfirmed(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, l.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		out, err := l.rpc.GetSignatureStatuses(ctx, false, sig)
		if err != nil {
			l.log.Debug("signature status lookup failed", "tx", sig.String(), "err", err)
		} else if out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			st := out.Value[0]
			if st.Err != nil {
				return fmt.Errorf("%w: transaction %s failed: %v", service.ErrMintNotApplied, sig, st.Err)
			}
			if st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction %s not confirmed: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// createIdempotentATA succeeds whether or not the account already exists.
func createIdempotentATA(payer, owner, mint, ata solana.PublicKey) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		{PublicKey: payer, IsSigner: true, IsWritable: true},
		{PublicKey: ata, IsWritable: true},
		{PublicKey: owner},
		{PublicKey: mint},
		{PublicKey: solana.SystemProgramID},
		{PublicKey: solana.TokenProgramID},
	}
	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, accounts, []byte{1})
}

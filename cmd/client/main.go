package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/pkg/logger"
)

var (
	serverURL string
	keyFile   string
	hostID    string
	payment   string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "claim-client",
	Short:         "Sign and send a credit claim to claimd",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClaim,
}

var creditsCmd = &cobra.Command{
	Use:   "credits [wallet]",
	Short: "Read a wallet's credits through the paid route",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCredits,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&serverURL, "server", envOr("SERVER_URL", "http://127.0.0.1:8788"), "claimd base URL")
	pf.StringVar(&keyFile, "keypair", envOr("WALLET_KEYPAIR", ""), "solana-keygen JSON file of the claiming wallet")
	pf.DurationVar(&timeout, "timeout", 90*time.Second, "request timeout")
	rootCmd.Flags().StringVar(&hostID, "host-id", envOr("HOST_ID", "local"), "host id embedded in the claim message")
	creditsCmd.Flags().StringVar(&payment, "payment", "", "X-Payment proof to attach")
	rootCmd.AddCommand(creditsCmd)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildClaim signs CLAIM|<hostId>|<wallet>|<unix ms> with the wallet key.
func buildClaim(key solana.PrivateKey, hostID string, now time.Time) (entity.ClaimRequest, error) {
	wallet := key.PublicKey().String()
	msg := strings.Join([]string{entity.ClaimPrefix, hostID, wallet, strconv.FormatInt(now.UnixMilli(), 10)}, "|")
	sig, err := key.Sign([]byte(msg))
	if err != nil {
		return entity.ClaimRequest{}, fmt.Errorf("sign claim: %w", err)
	}
	return entity.ClaimRequest{Wallet: wallet, HostID: hostID, Message: msg, Signature: sig.String()}, nil
}

func loadKey() (solana.PrivateKey, error) {
	if keyFile == "" {
		return nil, fmt.Errorf("--keypair (or WALLET_KEYPAIR) is required")
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("load keypair %s: %w", keyFile, err)
	}
	return key, nil
}

func runClaim(cmd *cobra.Command, _ []string) error {
	log := logger.NewJSON("claim-client", logger.LevelFromEnv(os.Getenv("LOG_LEVEL")))

	key, err := loadKey()
	if err != nil {
		return err
	}
	req, err := buildClaim(key, hostID, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(serverURL, "/")+"/claim", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debug("sending claim", "wallet", req.Wallet, "msg", req.Message)
	return send(cmd.OutOrStdout(), httpReq)
}

func runCredits(cmd *cobra.Command, args []string) error {
	var wallet string
	if len(args) == 1 {
		wallet = args[0]
	} else {
		key, err := loadKey()
		if err != nil {
			return err
		}
		wallet = key.PublicKey().String()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(serverURL, "/")+"/credits/"+url.PathEscape(wallet), nil)
	if err != nil {
		return err
	}
	if payment != "" {
		httpReq.Header.Set("X-Payment", payment)
	}
	return send(cmd.OutOrStdout(), httpReq)
}

// send prints the response body and fails on any non-2xx status.
func send(out io.Writer, req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if receipt := resp.Header.Get("X-Payment-Response"); receipt != "" {
		fmt.Fprintf(out, "payment receipt: %s\n", receipt)
	}
	fmt.Fprintln(out, strings.TrimSpace(string(raw)))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	return nil
}

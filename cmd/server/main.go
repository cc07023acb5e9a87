package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claimd",
	Short: "Redeem off-chain credits for SPL tokens",
	Long: `claimd exchanges a wallet's coordinator credits for freshly minted SPL tokens.

Configuration is read from the environment (and an optional .env file).

Example:
  MINT_ADDR=<mint> claimd serve
  MINT_ADDR=<mint> claimd reconcile`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "optional KEY=VALUE file loaded before parsing the environment")
	rootCmd.AddCommand(serveCmd, reconcileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

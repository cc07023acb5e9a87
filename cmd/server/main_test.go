package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dayanaadylkhanova/credit-claim/pkg/config"
)

func TestRootCommand_ErrorNotPrintedByCobra(t *testing.T) {
	t.Setenv("MINT_ADDR", "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"reconcile", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	if !errors.Is(err, config.ErrMintAddrRequired) {
		t.Fatalf("Execute() error = %v; want %v", err, config.ErrMintAddrRequired)
	}
	if stderr.Len() != 0 || stdout.Len() != 0 {
		t.Fatalf("cobra wrote output on error (main prints it once): stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

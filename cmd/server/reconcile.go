package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Settle credits for claims whose tokens were minted but never settled",
	Long: `Walk the claim intent log once. Minted but unsettled claims are settled again with
the same amount and claim id; claims stuck before mint confirmation are only reported.
Nothing is ever minted by this command.`,
	RunE: runReconcile,
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer c.close()
	if c.cfg.IntentDB == "" {
		return errors.New("reconcile needs INTENT_DB")
	}

	rep, err := c.reconciler().Reconcile(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return err
	}
	if len(rep.Pending) > 0 {
		return fmt.Errorf("%d minted claims still unsettled", len(rep.Pending))
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/model"
)

// appkeyListCmd represents the appkey list command
var appkeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the app keys held by an owner",
	Long: `List the app keys held by an owner.

Client secrets are never shown.

Example:
  consolectl appkey list --owner-id 42 --owner-type user`,
	Run: func(cmd *cobra.Command, args []string) {
		ownerID, ownerType, err := ownerPairFlags(cmd)
		if err == nil {
			err = listAppKeys(ownerID, ownerType)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list app keys: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	appkeyCmd.AddCommand(appkeyListCmd)
	appkeyListCmd.Flags().Uint("owner-id", 0, "Owner id")
	appkeyListCmd.Flags().String("owner-type", "", "Owner type name (e.g. user, cluster)")
}

func listAppKeys(ownerID uint, ownerType model.OwnerType) error {
	km, _, err := newKeyMaster()
	if err != nil {
		return err
	}

	keys, err := km.Keys(context.Background(), ownerID, ownerType)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s %-12s %-66s %-8s %s\n", "ID", "CLASS", "CLIENT ID", "ACTIVE", "LABEL")
	for _, key := range keys {
		fmt.Printf("%-6d %-12s %-66s %-8t %s\n",
			key.ID, key.KeyClassNbr, key.ClientID, key.Active, key.Label)
	}
	return nil
}

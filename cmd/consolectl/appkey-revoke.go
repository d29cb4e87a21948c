package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/model"
)

// appkeyRevokeCmd represents the appkey revoke command
var appkeyRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke every app key held by an owner",
	Long: `Revoke every app key held by an owner.

This is the same bulk deletion the data layer performs when the owning
entity itself is destroyed.

Example:
  consolectl appkey revoke --owner-id 100 --owner-type instance`,
	Run: func(cmd *cobra.Command, args []string) {
		ownerID, ownerType, err := ownerPairFlags(cmd)
		if err == nil {
			err = revokeAppKeys(ownerID, ownerType)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to revoke app keys: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	appkeyCmd.AddCommand(appkeyRevokeCmd)
	appkeyRevokeCmd.Flags().Uint("owner-id", 0, "Owner id")
	appkeyRevokeCmd.Flags().String("owner-type", "", "Owner type name (e.g. user, instance)")
}

func revokeAppKeys(ownerID uint, ownerType model.OwnerType) error {
	km, _, err := newKeyMaster()
	if err != nil {
		return err
	}

	count, err := km.RevokeKeys(context.Background(), ownerID, ownerType)
	if err != nil {
		return err
	}

	fmt.Printf("Revoked %d app key(s) for %s %d\n", count, ownerType, ownerID)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/keymaster"
	"github.com/hostbay/console/pkg/model"
)

// appkeyCreateCmd represents the appkey create command
var appkeyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Issue a new app key for an owner",
	Long: `Issue a new app key for an owner.

The owner must exist; the key class is derived from the owner type unless
overridden. The client secret is printed once, on issue, and cannot be
recovered later.

Example:
  consolectl appkey create --owner-id 42 --owner-type user
  consolectl appkey create --owner-id 5 --owner-type cluster --label backup`,
	Run: func(cmd *cobra.Command, args []string) {
		label, _ := cmd.Flags().GetString("label")

		ownerID, ownerType, err := ownerPairFlags(cmd)
		if err == nil {
			err = createAppKey(ownerID, ownerType, label)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create app key: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	appkeyCmd.AddCommand(appkeyCreateCmd)
	appkeyCreateCmd.Flags().Uint("owner-id", 0, "Owner id the key is bound to")
	appkeyCreateCmd.Flags().String("owner-type", "", "Owner type name (e.g. user, cluster)")
	appkeyCreateCmd.Flags().StringP("label", "l", "", "Optional key label")
}

func createAppKey(ownerID uint, ownerType model.OwnerType, label string) error {
	km, _, err := newKeyMaster()
	if err != nil {
		return err
	}

	key, err := km.CreateKey(context.Background(), ownerID, ownerType, keymaster.Fields{Label: label})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Issued app key %d for %s %d\n", key.ID, ownerType, ownerID)
	fmt.Printf("Client ID: %s\n", key.ClientID)
	fmt.Printf("Client Secret: %s\n", key.ClientSecret)
	return nil
}

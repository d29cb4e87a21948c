package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/model"
)

// appkeyCmd represents the appkey command
var appkeyCmd = &cobra.Command{
	Use:   "appkey",
	Short: "Manage app keys",
	Long:  `Manage issued API credentials (app keys) and their owners.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'appkey' requires a subcommand (create, list, revoke)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(appkeyCmd)
}

// ownerPairFlags reads the shared --owner-id/--owner-type flags.
func ownerPairFlags(cmd *cobra.Command) (uint, model.OwnerType, error) {
	ownerID, _ := cmd.Flags().GetUint("owner-id")
	typeName, _ := cmd.Flags().GetString("owner-type")

	ownerType, err := model.OwnerTypeString(typeName)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --owner-type %q (one of: %v)", typeName, model.OwnerTypeStrings())
	}
	return ownerID, ownerType, nil
}

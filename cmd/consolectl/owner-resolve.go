package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/model"
)

// ownerResolveCmd represents the owner resolve command
var ownerResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve an owner pair to its concrete row",
	Long: `Resolve an (owner id, owner type) pair to the concrete row it
points at and print the row as JSON.

Example:
  consolectl owner resolve --owner-id 5 --owner-type cluster`,
	Run: func(cmd *cobra.Command, args []string) {
		ownerID, ownerType, err := ownerPairFlags(cmd)
		if err == nil {
			err = resolveOwner(ownerID, ownerType)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve owner: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	ownerCmd.AddCommand(ownerResolveCmd)
	ownerResolveCmd.Flags().Uint("owner-id", 0, "Owner id")
	ownerResolveCmd.Flags().String("owner-type", "", "Owner type name (e.g. user, cluster)")
}

func resolveOwner(ownerID uint, ownerType model.OwnerType) error {
	km, _, err := newKeyMaster()
	if err != nil {
		return err
	}

	entity, err := km.Resolver().ResolveOwner(ownerID, ownerType)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s %d resolves to a %s row\n", ownerType, ownerID, entity.TableName())
	fmt.Println(string(data))
	return nil
}

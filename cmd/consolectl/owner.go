package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ownerCmd represents the owner command
var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Inspect polymorphic owners",
	Long:  `Inspect the polymorphic ownership links behind app keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'owner' requires a subcommand (resolve)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
}

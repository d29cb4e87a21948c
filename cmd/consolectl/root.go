package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/hostbay/console/pkg/config"
	"github.com/hostbay/console/pkg/db"
	"github.com/hostbay/console/pkg/keymaster"
	"github.com/hostbay/console/pkg/owner"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consolectl",
	Short: "Operator CLI for the hosting console data layer",
	Long: `consolectl manages the hosting console's data layer: app keys,
ownership links and configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newKeyMaster wires configuration, database and resolver into a KeyMaster
// for commands that touch app keys.
func newKeyMaster() (*keymaster.KeyMaster, *gorm.DB, error) {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	signer, err := keymaster.NewSigner(cfg.SignatureMethod, cfg.ServerSecret)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Connect(db.Config{Signer: signer})
	if err != nil {
		return nil, nil, err
	}

	resolver := owner.NewResolver(database, owner.Default())
	return keymaster.New(database, resolver, signer), database, nil
}

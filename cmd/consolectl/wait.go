package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostbay/console/pkg/db"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the database to be ready",
	Long: `Wait for the database to be ready by polling the connection.

This command will repeatedly try to connect and issue a trivial query until
the database responds or the maximum number of retries is reached.

Example:
  consolectl wait
  consolectl wait --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		retries, _ := cmd.Flags().GetInt("retries")

		if err := waitForDatabase(retries); err != nil {
			fmt.Fprintf(os.Stderr, "Database did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForDatabase(retries int) error {
	fmt.Println("Waiting for the database to be ready...")

	for i := 0; i < retries; i++ {
		database, err := db.Connect(db.Config{})
		if err == nil {
			if err := database.Exec("SELECT 1").Error; err == nil {
				fmt.Println()
				fmt.Println("Database is ready!")
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("database is not ready after %d seconds", retries)
}

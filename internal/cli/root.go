package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexilens",
	Short: "Terms-of-service risk analyzer",
	Long:  "Classifies legal text (terms of service, privacy policies) into user-relevant\nrisk points and an overall verdict, using a static rule table or a remote\ngenerative-language analyzer.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/atharva-sardesai/proposal/internal/app"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "proposal-server",
		Short: "Proposal authoring and document generation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to YAML config file (default $PROPOSAL_CONFIG)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

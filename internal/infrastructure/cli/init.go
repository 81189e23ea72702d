package cli

import (
	"fmt"
	"path/filepath"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var initSamples bool

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a new clearwater workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}

		name := filepath.Base(root)
		if len(args) > 0 {
			name = args[0]
		}

		if err := services.Init.InitializeWorkspace(cmd.Context(), name, initSamples); err != nil {
			return MapError(fmt.Errorf("failed to initialize workspace: %w", err))
		}

		if err := config.SaveLogConfig(root, config.DefaultLogConfig()); err != nil {
			services.Logger.Warn("failed to write logging config", "error", err)
		}

		fmt.Printf("Successfully initialized clearwater workspace: %s\n", name)
		if initSamples {
			fmt.Println("Sample actions and comparisons written. Try 'clearwater actions' or 'clearwater dashboard'.")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initSamples, "samples", false, "Populate the workspace with demo actions and comparisons")
	RootCmd.AddCommand(initCmd)
}

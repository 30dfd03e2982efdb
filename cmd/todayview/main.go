// Package main is the entry point for the TodayView TUI client.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todayview/internal/api"
	"todayview/internal/config"
	"todayview/internal/tui"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "todayview",
		Short:        "Terminal client for the TodayView task list",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("todayview version %s\n", version)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create a config file with default settings",
			RunE: func(cmd *cobra.Command, args []string) error {
				return createConfig()
			},
		},
		newAuthCmd(),
	)

	return root
}

// newAuthCmd manages the stored API token.
func newAuthCmd() *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API token",
	}

	auth.AddCommand(
		&cobra.Command{
			Use:   "login <token>",
			Short: "Store an API token (keyring, falling back to a credentials file)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.SaveToken(args[0]); err != nil {
					return fmt.Errorf("failed to store token: %w", err)
				}
				fmt.Println("Token stored.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Remove the stored API token",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.ClearToken(); err != nil {
					return fmt.Errorf("failed to remove token: %w", err)
				}
				fmt.Println("Token removed.")
				return nil
			},
		},
	)

	return auth
}

// createConfig writes a config file with default settings.
func createConfig() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point server.url at your TodayView server")
	fmt.Println("  2. Add your API token: todayview auth login <token>")
	fmt.Println("  3. Run 'todayview' to start")

	return nil
}

// runApp starts the TUI.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.URL == "" {
		path, _ := config.ConfigPath()
		fmt.Println("No server configured.")
		fmt.Println()
		fmt.Printf("Run 'todayview init' to create a config file at:\n  %s\n", path)
		return nil
	}

	token, err := cfg.ResolveToken()
	if err != nil {
		return fmt.Errorf("failed to resolve API token: %w", err)
	}
	if token == "" {
		fmt.Println("No API token found.")
		fmt.Println("Store one with 'todayview auth login <token>', set the")
		fmt.Println("TODAYVIEW_TOKEN environment variable, or add it to the config file.")
		return nil
	}

	client := api.NewClient(cfg.Server.URL, token)

	app := tui.NewApp(client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

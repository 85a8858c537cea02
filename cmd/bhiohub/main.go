package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhiohub/bhiohub/app"
	"github.com/bhiohub/bhiohub/internal/config"
	"github.com/bhiohub/bhiohub/internal/logging"
)

type options struct {
	configPath string
	verbose    bool
	tab        string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "bhiohub",
		Short: "BhioHub talent dashboard in the terminal",
		Long: `Terminal dashboard for the BhioHub healthcare talent platform.

Run without a subcommand to open the shell configured by ui.shell.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts, "")
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/bhiohub/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&opts.tab, "tab", "", "initial tab, overrides ui.initial_tab")

	root.AddCommand(
		&cobra.Command{
			Use:   "admin",
			Short: "Open the administrator dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runShell(opts, config.ShellAdmin)
			},
		},
		&cobra.Command{
			Use:   "user",
			Short: "Open the professional's dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runShell(opts, config.ShellUser)
			},
		},
		newTabsCmd(),
	)
	return root
}

func newTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the tabs of each shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, set := range app.TabSets() {
				fmt.Fprintf(out, "%s (default %s)\n", set.Shell, set.Default)
				for i, tab := range set.Tabs {
					fmt.Fprintf(out, "  %d  %-12s %s\n", i+1, tab.ID, tab.Label)
				}
			}
			return nil
		},
	}
}

func runShell(opts *options, shell string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if shell != "" {
		cfg.UI.Shell = shell
	}
	if opts.tab != "" {
		cfg.UI.InitialTab = opts.tab
	}

	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

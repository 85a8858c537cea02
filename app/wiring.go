// Package app wires configuration and logging into the two dashboard shells.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/config"
	"github.com/bhiohub/bhiohub/screens/admin"
	"github.com/bhiohub/bhiohub/screens/user"
)

// NewAdminShell builds the admin shell. Its session starts from the catalog
// seed every time.
func NewAdminShell(cfg config.Config, logger *zap.Logger) (*core.Shell[admin.Tab], error) {
	sess := admin.NewSession(cfg.ArticleTick(), cfg.Articles.ProgressStep)
	reg, err := admin.NewRegistry(sess)
	if err != nil {
		return nil, fmt.Errorf("admin registry: %w", err)
	}
	return core.NewShell(reg, core.ShellOptions[admin.Tab]{
		Brand:              admin.Brand,
		Footer:             admin.Footer,
		InitialTab:         admin.Tab(cfg.UI.InitialTab),
		Keys:               admin.Bindings(),
		KeyOverrides:       cfg.Keys,
		Logger:             orNop(logger).Named("admin"),
		Animations:         cfg.UI.Animations,
		TransitionDuration: cfg.TransitionDuration(),
		ToastTTL:           cfg.ToastTTL(),
	}), nil
}

func NewUserShell(cfg config.Config, logger *zap.Logger) (*core.Shell[user.Tab], error) {
	reg, err := user.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("user registry: %w", err)
	}
	return core.NewShell(reg, core.ShellOptions[user.Tab]{
		Brand:              user.Brand,
		Footer:             user.Footer,
		InitialTab:         user.Tab(cfg.UI.InitialTab),
		Keys:               user.Bindings(),
		KeyOverrides:       cfg.Keys,
		Logger:             orNop(logger).Named("user"),
		Animations:         cfg.UI.Animations,
		TransitionDuration: cfg.TransitionDuration(),
		ToastTTL:           cfg.ToastTTL(),
	}), nil
}

// New builds the shell named by cfg.UI.Shell.
func New(cfg config.Config, logger *zap.Logger) (tea.Model, error) {
	logger = orNop(logger)
	logger.Info("starting shell", zap.String("shell", cfg.UI.Shell), zap.String("initial_tab", cfg.UI.InitialTab))
	switch cfg.UI.Shell {
	case config.ShellAdmin:
		shell, err := NewAdminShell(cfg, logger)
		if err != nil {
			return nil, err
		}
		return shell, nil
	case config.ShellUser:
		shell, err := NewUserShell(cfg, logger)
		if err != nil {
			return nil, err
		}
		return shell, nil
	}
	return nil, fmt.Errorf("unknown shell %q", cfg.UI.Shell)
}

// TabSet describes one shell for listing.
type TabSet struct {
	Shell   string
	Default string
	Tabs    []TabInfo
}

type TabInfo struct {
	ID    string
	Label string
}

// TabSets lists both shells' tabs in sidebar order.
func TabSets() []TabSet {
	adminViews := admin.Views(admin.NewSession(0, 0))
	userViews := user.Views()
	return []TabSet{
		describe(config.ShellAdmin, string(admin.TabDashboard), adminViews),
		describe(config.ShellUser, string(user.TabHome), userViews),
	}
}

func describe[K ~string](shell, def string, views []core.ViewEntry[K]) TabSet {
	set := TabSet{Shell: shell, Default: def}
	for _, v := range views {
		set.Tabs = append(set.Tabs, TabInfo{ID: string(v.ID), Label: v.Label})
	}
	return set
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

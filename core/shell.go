package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bhiohub/bhiohub/widgets"
)

type ShellOptions[K ~string] struct {
	Brand      string
	Footer     string
	InitialTab K
	// Keys are screen-scoped bindings appended after the shell defaults.
	Keys []KeyBinding
	// KeyOverrides rebinds actions by name, e.g. {"quit": {"ctrl+q"}}.
	KeyOverrides       map[string][]string
	Logger             *zap.Logger
	Animations         bool
	TransitionDuration time.Duration
	ToastTTL           time.Duration
}

// Shell composes the persistent sidebar with the single mounted screen of
// its navigation controller.
type Shell[K ~string] struct {
	brand      string
	registry   *Registry[K, ViewEntry[K]]
	nav        *Controller[K]
	keys       *KeyRegistry
	logger     *zap.Logger
	sidebar    widgets.Sidebar
	content    Screen
	mountedID  K
	mounts     int
	modals     ModalStack
	toasts     Toasts
	transition Transition
	pending    []tea.Cmd
	width      int
	height     int
	quitting   bool
}

func NewShell[K ~string](registry *Registry[K, ViewEntry[K]], opts ShellOptions[K]) *Shell[K] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ids := registry.IDs()
	labels := make([]string, len(ids))
	items := make([]widgets.SidebarItem, len(ids))
	for i, id := range ids {
		entry, _ := registry.Resolve(id)
		labels[i] = entry.Label
		items[i] = widgets.SidebarItem{Icon: entry.Icon, Label: entry.Label}
	}
	bindings := append(DefaultKeyBindings(labels), jumpBindings()...)
	bindings = append(bindings, opts.Keys...)
	if len(opts.KeyOverrides) > 0 {
		known := DefaultKeybindingsByAction(bindings)
		for action := range opts.KeyOverrides {
			if _, ok := known[action]; !ok {
				logger.Warn("ignoring key override for unknown action", zap.String("action", action))
			}
		}
		bindings = ApplyActionKeybindings(bindings, opts.KeyOverrides)
	}

	s := &Shell[K]{
		brand:      opts.Brand,
		registry:   registry,
		nav:        NewController(registry),
		keys:       NewKeyRegistry(bindings),
		logger:     logger,
		sidebar:    widgets.Sidebar{Brand: opts.Brand, Items: items, Footer: opts.Footer},
		toasts:     NewToasts(opts.ToastTTL),
		transition: NewTransition(opts.Animations, opts.TransitionDuration),
		width:      100,
		height:     32,
	}
	if opts.InitialTab != "" {
		if err := s.nav.SetActiveTab(opts.InitialTab); err != nil {
			logger.Warn("initial tab rejected, using default",
				zap.String("shell", opts.Brand),
				zap.String("tab", string(opts.InitialTab)),
				zap.String("default", string(registry.Default())),
			)
		}
	}
	s.mount(s.nav.ActiveTab())
	s.nav.setOnChange(s.remount)
	return s
}

func (s *Shell[K]) Init() tea.Cmd {
	return s.flush(nil)
}

// Navigator is the handle screens use to switch tabs. It is the shell
// itself so rejected ids are logged in one place.
func (s *Shell[K]) Navigator() Navigator[K] {
	return s
}

func (s *Shell[K]) ActiveTab() K {
	return s.nav.ActiveTab()
}

// SetActiveTab is the programmatic entry point; see Controller.SetActiveTab.
func (s *Shell[K]) SetActiveTab(id K) error {
	if err := s.nav.SetActiveTab(id); err != nil {
		s.logger.Warn("tab change rejected", zap.String("shell", s.brand), zap.Error(err))
		return err
	}
	return nil
}

// Content returns the mounted screen and the tab it was built for.
func (s *Shell[K]) Content() (K, Screen) {
	return s.mountedID, s.content
}

// Mounts counts mount operations over the shell's lifetime.
func (s *Shell[K]) Mounts() int {
	return s.mounts
}

func (s *Shell[K]) Modals() int {
	return s.modals.Len()
}

func (s *Shell[K]) Toast() (Toast, bool) {
	return s.toasts.Current()
}

func (s *Shell[K]) Transitioning() bool {
	return s.transition.Active()
}

func (s *Shell[K]) remount(prev, next K) {
	s.logger.Debug("tab changed",
		zap.String("shell", s.brand),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)
	if m, ok := s.content.(Mounter); ok {
		m.Unmount()
	}
	s.content = nil
	s.modals.Clear()
	s.mount(next)
	s.pending = append(s.pending, s.transition.start())
}

func (s *Shell[K]) mount(id K) {
	entry, err := s.registry.Resolve(id)
	if err != nil {
		s.logger.Warn("unresolvable tab, mounting default", zap.String("shell", s.brand), zap.Error(err))
		id, entry = s.registry.ResolveOrDefault(id)
	}
	s.content = entry.build(s)
	s.mountedID = id
	s.mounts++
	s.sidebar.Active = s.registry.IndexOf(id)
	if m, ok := s.content.(Mounter); ok {
		s.pending = append(s.pending, m.Mount())
	}
}

func (s *Shell[K]) flush(cmd tea.Cmd) tea.Cmd {
	if len(s.pending) == 0 {
		return cmd
	}
	cmds := append(s.pending, cmd)
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *Shell[K]) scope() string {
	if top := s.modals.Top(); top != nil {
		return top.Scope()
	}
	if s.content == nil {
		return "app"
	}
	return s.content.Scope()
}

func (s *Shell[K]) capturing() bool {
	c, ok := s.content.(InputCapturer)
	return ok && c.CapturesInput()
}

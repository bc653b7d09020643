package update

import (
	"fmt"
	"math/rand/v2"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"

	"github.com/sandeepkv93/plantd/internal/clock"
	"github.com/sandeepkv93/plantd/internal/config"
	"github.com/sandeepkv93/plantd/internal/garden"
	"github.com/sandeepkv93/plantd/internal/growth"
	"github.com/sandeepkv93/plantd/internal/journal"
	"github.com/sandeepkv93/plantd/internal/model"
	"github.com/sandeepkv93/plantd/internal/scheduler"
)

type Screen string

const (
	ScreenSelect Screen = "Select"
	ScreenGarden Screen = "Garden"
)

type Overlay string

const (
	OverlayNone    Overlay = ""
	OverlayHelp    Overlay = "help"
	OverlayHistory Overlay = "history"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Notification struct {
	Kind  model.EventKind
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// TickSource feeds due-check ticks into the update loop.
type TickSource interface {
	C() <-chan scheduler.Tick
	Nudge()
	Dropped() uint64
}

// Deps are the collaborators a Model runs with. Zero values fall back to in-process
// defaults so tests can build a Model without any infrastructure.
type Deps struct {
	Config   config.RuntimeConfig
	Ticks    TickSource
	Journal  journal.Repository
	Logger   *zap.Logger
	Clock    clock.Clock
	Notifier DesktopNotifier
	IDs      garden.IDFunc
	Rand     *rand.Rand
	Location *time.Location
}

type Model struct {
	Screen        Screen
	Overlay       Overlay
	Session       garden.Session
	Cursor        int
	Pulsing       bool
	Sparkles      []growth.Sparkle
	Palette       CommandPaletteState
	Adding        bool
	Notifications []Notification
	History       []journal.Entry
	HistoryFilter model.EventKind
	Status        StatusBar
	Quitting      bool
	LastError     error
	Now           time.Time

	cfg      config.RuntimeConfig
	ticks    TickSource
	journal  journal.Repository
	log      *zap.Logger
	clock    clock.Clock
	notifier DesktopNotifier
	rng      *rand.Rand
	pulseSeq int
	dropped  uint64
	keys     keyMap

	plantList    list.Model
	quickAdd     textinput.Model
	commandInput textinput.Model
	careBars     progress.Model
	growthBar    progress.Model
	historyTable table.Model
	helpModel    help.Model
	helpViewport viewport.Model
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type plantItem struct {
	opt model.PlantOption
}

func (i plantItem) FilterValue() string { return i.opt.Name }
func (i plantItem) Title() string       { return i.opt.Name }
func (i plantItem) Description() string {
	return fmt.Sprintf("%s | %s", i.opt.Type, i.opt.Difficulty)
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// TickMsg carries one scheduler tick into Update.
type TickMsg struct {
	Tick scheduler.Tick
}

// PulseDoneMsg ends the grow animation started with the same sequence number.
type PulseDoneMsg struct {
	Seq int
}

func NewModel(deps Deps) Model {
	cfg      := deps.Config
	defaults := config.DefaultRuntimeConfig()
	if cfg.NotificationLimit <= 0 {
		cfg.NotificationLimit = defaults.NotificationLimit
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaults.HistoryLimit
	}
	m := Model{
		Screen:   ScreenSelect,
		cfg:      cfg,
		ticks:    deps.Ticks,
		journal:  deps.Journal,
		log:      deps.Logger,
		clock:    deps.Clock,
		notifier: deps.Notifier,
		rng:      deps.Rand,
		keys:     defaultKeyMap(),
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.clock == nil {
		m.clock = clock.Real{}
	}
	if m.notifier == nil {
		m.notifier = NoopDesktopNotifier{}
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	m.Session = garden.NewSession(garden.WithIDs(deps.IDs), garden.WithLocation(loc))
	m.Now = m.clock.Now()
	m.initBubbleComponents()

	if cfg.DefaultPlant != "" {
		m = m.selectPlant(cfg.DefaultPlant)
	}
	m.syncBubbleData()
	return m
}

package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/batpong/internal/assets"
	"github.com/diegok/batpong/internal/audio"
	"github.com/diegok/batpong/internal/clock"
	"github.com/diegok/batpong/internal/config"
	"github.com/diegok/batpong/internal/game"
	"github.com/diegok/batpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	logFile  *os.File
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.Keyboard
	clock    *clock.Clock
	match    *game.Match

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		log:  log.New(io.Discard, "", 0),
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays one match.
func (a *App) Run() error {
	if err := a.openLog(); err != nil {
		return err
	}

	a.initAudio()

	if err := a.newMatch(); err != nil {
		a.cleanup()
		return err
	}

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.attach(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.log.Printf("[app] signal received, quitting")
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	// Cleanup
	a.cleanup()

	return runErr
}

// openLog points the logger at the configured file. Without one, log lines
// are discarded.
func (a *App) openLog() error {
	if a.cfg.LogPath == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.log = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// initAudio starts the speaker. On failure the cues are muted and the game
// continues without sound.
func (a *App) initAudio() {
	if a.cfg.Mute {
		audio.Mute()
		return
	}
	if err := audio.Init(); err != nil {
		a.log.Printf("[app] audio disabled: %v", err)
		audio.Mute()
		return
	}
	audio.SetMasterVolume(a.cfg.Volume)
}

// newMatch loads the built-in assets and sets up a match in the menu.
func (a *App) newMatch() error {
	catalog, err := assets.Default(assets.DefaultPalette)
	if err != nil {
		return fmt.Errorf("failed to build assets: %w", err)
	}
	loaded, err := assets.Load(catalog)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Printf("[app] random seed %d", seed)

	a.match, err = game.NewMatch(loaded, rand.New(rand.NewSource(seed)), a.log)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// attach binds the app to a screen and starts the frame clock.
func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.keyboard = ui.NewKeyboard(ui.DefaultHold)
	a.clock = clock.New()
}

// mainLoop is the main event loop that handles input and advances the match
// once per frame.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// stop closes the quit channel once, from whichever side asks first.
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keyboard.PressKey(ev.Key(), ev.Rune(), ev.When())

	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	}

	return false
}

// tick advances the match by one frame and redraws it.
func (a *App) tick() {
	now := a.clock.Tick()
	a.keyboard.Sample(now)
	a.match.Update(a.clock, a.keyboard)
	a.draw()
}

func (a *App) draw() {
	a.renderer.Begin()
	a.match.Draw(a.renderer)
	a.renderer.End(a.status())
}

// status is the text of the bottom bar.
func (a *App) status() string {
	switch a.match.Phase() {
	case game.PhaseMenu:
		return "W/S  left bat   ↑/↓  right bat   space  start   q  quit"
	case game.PhaseRunning:
		return fmt.Sprintf("speed x%.1f   q  quit", a.match.Ball.Speed)
	case game.PhaseOver:
		left, right := a.match.Scores()
		return fmt.Sprintf("final %d  -  %d   q  quit", left, right)
	default:
		panic(fmt.Sprintf("unknown phase %v", a.match.Phase()))
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}
}

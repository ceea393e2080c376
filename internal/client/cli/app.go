package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/usuarios/internal/client/client"
	"github.com/dmitrijs2005/usuarios/internal/client/config"
	"github.com/dmitrijs2005/usuarios/internal/client/services"
	"github.com/dmitrijs2005/usuarios/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single reachability probe.
const pingTimeout = 3 * time.Second

// pinger is the part of the gateway the status watcher needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// App is the interactive users screen: a REPL on top of UserService.
type App struct {
	config *config.Config
	logger logging.Logger
	pinger pinger
	users  *services.UserService
	in     *Console
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp wires the HTTP gateway, the user service and the terminal I/O
// from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	apiClient, err := client.NewHTTPClient(client.Options{
		BaseURL:     cfg.ServerBaseURL,
		Timeout:     cfg.RequestTimeout,
		InsecureTLS: cfg.InsecureTLS,
		IDRefs:      cfg.ReferenceEncoding == config.EncodingID,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	return newApp(cfg, logger, apiClient, NewConsole(os.Stdin), os.Stdout), nil
}

func newApp(cfg *config.Config, logger logging.Logger, c client.Client, in *Console, w io.Writer) *App {
	return &App{
		config: cfg,
		logger: logger,
		pinger: c,
		users:  services.NewUserService(c, logger),
		in:     in,
		out:    w,
	}
}

// Run loads the screen data, starts the status watcher and hands control
// to the REPL until the user quits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Users administration (type 'help' for commands)")

	// assume online until the first probe says otherwise
	a.setMode(ModeOnline)
	a.load(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.in, a.out)
}

func (a *App) load(ctx context.Context) {
	fmt.Fprintln(a.out, "Loading...")
	a.report(a.users.Load(ctx))
	if a.users.UsersErr() == nil {
		a.printUsers()
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connection status changed", "mode", string(mode))
	}
}

// getStatus is the prompt suffix: connection mode plus active filters.
func (a *App) getStatus() string {
	var parts []string
	if m := a.getMode(); m != "" {
		parts = append(parts, string(m))
	}
	f := a.users.Filter()
	if f.DepartmentID != "" {
		parts = append(parts, "dept="+f.DepartmentID)
	}
	if f.PositionID != "" {
		parts = append(parts, "pos="+f.PositionID)
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.pinger.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// report prints the user-visible outcome of r and of its followup reload.
func (a *App) report(r services.Result) {
	switch {
	case r.Cancelled:
		fmt.Fprintln(a.out, "Cancelled.")
	case r.Err != nil:
		fmt.Fprintf(a.out, "Error: %s\n", r.Message)
	}
	if r.Followup != nil && r.Followup.Err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", r.Followup.Message)
	}
}

func (a *App) printUsers() {
	renderUsers(a.out, a.users.FilteredUsers(), terminalWidth())
}

// confirmer asks on the terminal, defaulting to no.
func (a *App) confirmer() services.Confirmer {
	return services.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		return GetYesNo(ctx, a.in, prompt, false, a.out)
	})
}

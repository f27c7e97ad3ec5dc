// Package cli implements travelctl, a single-user terminal client over the
// same services the BFF uses.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/service"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

// App holds the services a command may use. Session is the persisted
// single-user session.
type App struct {
	Session  *service.Session
	Bookings ports.BookingService
	Trips    ports.TripService
	Expenses ports.ExpenseService
	Admin    ports.AdminService
	Views    ports.ViewsService

	Out io.Writer
	Log zerolog.Logger
}

type command struct {
	summary string
	run     func(a *App, ctx context.Context, fs *flag.FlagSet, args []string) error
}

var commands = map[string]command{
	"register":          {"create an account", (*App).register},
	"login":             {"log in and remember the session", (*App).login},
	"logout":            {"forget the session", (*App).logout},
	"whoami":            {"show the logged-in user", (*App).whoami},
	"profile":           {"update email and phone", (*App).profile},
	"packages":          {"browse the package catalog", (*App).packages},
	"package":           {"show one package", (*App).pkg},
	"dashboard":         {"show the dashboard", (*App).dashboard},
	"history":           {"show bookings and trips", (*App).history},
	"book":              {"book a package", (*App).book},
	"cancel":            {"cancel a booking", (*App).cancel},
	"trip":              {"create a custom trip", (*App).trip},
	"trip-from-package": {"add a package to my trips", (*App).tripFromPackage},
	"search":            {"search transport options, optionally booking or tracking one", (*App).search},
	"expense-add":       {"record an expense", (*App).expenseAdd},
	"expenses":          {"list expenses", (*App).expenses},
	"expense-delete":    {"delete an expense", (*App).expenseDelete},
	"admin-overview":    {"show the admin overview", (*App).adminOverview},
	"admin-status":      {"change a booking status (admin)", (*App).adminStatus},
}

// Run dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(a.Out)
	if err := cmd.run(a, ctx, fs, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: travelctl <command> [flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-18s %s\n", name, commands[name].summary)
	}
	_, _ = io.WriteString(a.Out, b.String())
}

// identity returns the logged-in user or domain.ErrNotAuthenticated.
func (a *App) identity() (domain.Identity, error) {
	id, ok := a.Session.Identity()
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: run `travelctl login` first", domain.ErrNotAuthenticated)
	}
	return id, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

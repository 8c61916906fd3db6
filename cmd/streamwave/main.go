// Command streamwave is a headless StreamWave client. It signs in against
// the platform backend, persists the session across runs, and exposes the
// consumer, creator, and admin screens as subcommands. Role-restricted
// screens go through the same route guard the web client uses.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/streamwave/streamwave-go/internal/bootstrap"
	"github.com/streamwave/streamwave-go/internal/router"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
	Out    io.Writer
	Nav    *printNavigator
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nav := &printNavigator{out: os.Stderr}
	app, err := bootstrap.BuildApp(cfg, logger, nav)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		App:    app,
		Out:    os.Stdout,
		Nav:    nav,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cmdName, presentError(runErr))
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login":  {name: "login", description: "Sign in and persist the session", run: runLogin},
		"logout": {name: "logout", description: "Clear the persisted session", run: runLogout},
		"signup": {name: "signup", description: "Register a new account", run: runSignup},
		"whoami": {name: "whoami", description: "Show the current session", run: runWhoami},

		"home":    {name: "home", description: "Browse the video feed (consumer)", run: runHome},
		"video":   {name: "video", description: "Show a video with its comments (consumer)", run: runVideo},
		"like":    {name: "like", description: "Toggle a like on a video (consumer)", run: runLike},
		"comment": {name: "comment", description: "Comment on a video (consumer)", run: runComment},
		"liked":   {name: "liked", description: "List liked videos (consumer)", run: runLiked},

		"dashboard": {name: "dashboard", description: "Creator dashboard stats", run: runCreatorDashboard},
		"my-videos": {name: "my-videos", description: "Manage your uploads (creator)", run: runMyVideos},
		"upload":    {name: "upload", description: "Upload a video (creator)", run: runUpload},
		"analytics": {name: "analytics", description: "Per-video analytics (creator)", run: runAnalytics},

		"admin": {name: "admin", description: "Admin screens: overview, users, videos", run: runAdmin},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: streamwave <command> [flags]")
	fmt.Fprintln(w)

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, cmds[name].description)
	}
	_ = tw.Flush()
}

// printNavigator satisfies ports.Navigator by announcing the redirect.
// A terminal has no screens to swap, so navigation is a message plus the
// remembered target, which guarded commands use to explain denials.
type printNavigator struct {
	out  io.Writer
	last string
}

func (n *printNavigator) Navigate(path string) {
	n.last = path
	fmt.Fprintf(n.out, "redirected to %s\n", path)
}

// guardScreen runs the route guard for a screen path before the screen's
// command executes. The check re-runs on every invocation; decisions are
// never cached.
func guardScreen(cmdCtx *commandContext, path string) error {
	decision := cmdCtx.App.Guard.Check(path)
	if decision.Allow {
		return nil
	}
	cmdCtx.Nav.Navigate(decision.RedirectTo)
	if decision.RedirectTo == router.PathLogin {
		return fmt.Errorf("screen %s requires signing in", path)
	}
	return fmt.Errorf("screen %s is not available to your role", path)
}

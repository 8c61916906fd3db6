package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/router"
	"github.com/streamwave/streamwave-go/internal/session"
)

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("both --email and --password are required")
	}

	user, err := cmdCtx.App.Sessions.Login(cmdCtx.Ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmdCtx.Out, "signed in as %s (%s)\n", user.Name, user.Role)
	// Land on the role's home screen, same as the login page.
	cmdCtx.Nav.Navigate(router.HomeFor(user.Role))
	return nil
}

func runLogout(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmdCtx.App.Sessions.Logout()
	fmt.Fprintln(cmdCtx.Out, "signed out")
	cmdCtx.Nav.Navigate(router.PathLogin)
	return nil
}

func runSignup(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", string(domainauth.RoleConsumer), "account role: consumer or creator")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return errors.New("--name, --email, and --password are required")
	}
	parsed, ok := domainauth.ParseRole(*role)
	if !ok || parsed == domainauth.RoleAdmin {
		return fmt.Errorf("invalid role %q", *role)
	}

	record, err := cmdCtx.App.Sessions.Register(cmdCtx.Ctx, session.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     parsed,
	})
	if err != nil {
		return err
	}

	// Registration does not establish a session; sign in explicitly.
	fmt.Fprintf(cmdCtx.Out, "account %s created; run `streamwave login` to sign in\n", record.Email)
	return nil
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw session document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, ok := cmdCtx.App.Sessions.CurrentUser()
	if !ok || !cmdCtx.App.Sessions.IsAuthenticated() {
		fmt.Fprintln(cmdCtx.Out, "not signed in")
		return nil
	}

	if *asJSON {
		return writeResult(cmdCtx.Out, user, "")
	}

	fmt.Fprintf(cmdCtx.Out, "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	if expiry, ok := cmdCtx.App.Sessions.TokenExpiry(); ok {
		fmt.Fprintf(cmdCtx.Out, "session expires %s\n", expiry.Format(time.RFC1123))
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/streamwave/streamwave-go/internal/app"
	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/router"
)

// runAdmin dispatches the admin sub-screens. All of them sit behind the
// same guarded route as the admin dashboard.
func runAdmin(cmdCtx *commandContext, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: streamwave admin <overview|users|videos|analytics> [flags]")
	}
	if err := guardScreen(cmdCtx, router.PathAdminDashboard); err != nil {
		return err
	}

	switch args[0] {
	case "overview":
		return runAdminOverview(cmdCtx, args[1:])
	case "users":
		return runAdminUsers(cmdCtx, args[1:])
	case "videos":
		return runAdminVideos(cmdCtx, args[1:])
	case "analytics":
		return runAdminAnalytics(cmdCtx, args[1:])
	default:
		return fmt.Errorf("unknown admin screen %q", args[0])
	}
}

func runAdminOverview(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin overview", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view, err := cmdCtx.App.Admin.Overview(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, view, *query)
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "videos\t%d\n", view.Stats.Content.TotalVideos)
	fmt.Fprintf(tw, "comments\t%d\n", view.Stats.Content.TotalComments)
	fmt.Fprintf(tw, "likes\t%d\n", view.Stats.Content.TotalLikes)
	fmt.Fprintf(tw, "users\t%d\n", view.Stats.Users.Total)
	fmt.Fprintf(tw, "creators\t%d\n", view.Stats.Users.Creators)
	fmt.Fprintf(tw, "consumers\t%d\n", view.Stats.Users.Consumers)
	_ = tw.Flush()

	if len(view.Recent) > 0 {
		fmt.Fprintln(cmdCtx.Out, "\nrecent videos:")
		writeVideoTable(cmdCtx, view.Recent)
	}
	return nil
}

func runAdminUsers(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin users", flag.ContinueOnError)
	page := fs.Int("page", 1, "listing page")
	limit := fs.Int("limit", 20, "users per page")
	role := fs.String("role", "", "filter by role")
	search := fs.String("search", "", "search term")
	deleteID := fs.String("delete", "", "delete the user with this id")
	toggleID := fs.String("toggle-status", "", "toggle active status of the user with this id")
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *deleteID != "":
		if err := cmdCtx.App.Admin.DeleteUser(cmdCtx.Ctx, *deleteID); err != nil {
			return err
		}
		fmt.Fprintln(cmdCtx.Out, "user deleted")
		return nil
	case *toggleID != "":
		record, err := cmdCtx.App.Admin.ToggleUserStatus(cmdCtx.Ctx, *toggleID)
		if err != nil {
			return err
		}
		status := "suspended"
		if record.Active {
			status = "active"
		}
		fmt.Fprintf(cmdCtx.Out, "user %s is now %s\n", record.Email, status)
		return nil
	}

	var roleFilter domainauth.Role
	if *role != "" {
		parsed, ok := domainauth.ParseRole(*role)
		if !ok {
			return fmt.Errorf("invalid role %q", *role)
		}
		roleFilter = parsed
	}

	list, err := cmdCtx.App.Admin.Users(cmdCtx.Ctx, app.UsersParams{
		Page:   *page,
		Limit:  *limit,
		Role:   roleFilter,
		Search: *search,
	})
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, list, *query)
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range list.Users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.Active)
	}
	_ = tw.Flush()
	fmt.Fprintf(cmdCtx.Out, "page %d of %d (%d users)\n", list.CurrentPage, list.TotalPages, list.Total)
	return nil
}

func runAdminVideos(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin videos", flag.ContinueOnError)
	page := fs.Int("page", 1, "listing page")
	limit := fs.Int("limit", 20, "videos per page")
	search := fs.String("search", "", "search term")
	deleteID := fs.String("delete", "", "delete the video with this id")
	statsID := fs.String("stats", "", "show stats for the video with this id")
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *deleteID != "":
		if err := cmdCtx.App.Admin.DeleteVideo(cmdCtx.Ctx, *deleteID); err != nil {
			return err
		}
		fmt.Fprintln(cmdCtx.Out, "video deleted")
		return nil
	case *statsID != "":
		stats, err := cmdCtx.App.Admin.VideoStats(cmdCtx.Ctx, *statsID)
		if err != nil {
			return err
		}
		return writeResult(cmdCtx.Out, stats, *query)
	}

	list, err := cmdCtx.App.Admin.Videos(cmdCtx.Ctx, app.VideosParams{
		Page:   *page,
		Limit:  *limit,
		Search: *search,
	})
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, list, *query)
	}
	writeVideoTable(cmdCtx, list.Videos)
	return nil
}

func runAdminAnalytics(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("admin analytics", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := cmdCtx.App.Admin.AllAnalytics(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, rows, *query)
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIDEO\tTITLE\tVIEWS\tLIKES\tCOMMENTS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", row.VideoID, row.Title, row.Views, row.Likes, row.Comments)
	}
	_ = tw.Flush()
	return nil
}

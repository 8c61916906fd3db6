package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/streamwave/streamwave-go/internal/app"
	"github.com/streamwave/streamwave-go/internal/router"
)

func runCreatorDashboard(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := guardScreen(cmdCtx, router.PathCreatorDashboard); err != nil {
		return err
	}

	view, err := cmdCtx.App.Creator.Dashboard(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, view, *query)
	}

	overview := view.Stats.Overview
	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "videos\t%d\n", overview.TotalVideos)
	fmt.Fprintf(tw, "views\t%d\n", overview.TotalViews)
	fmt.Fprintf(tw, "likes\t%d\n", overview.TotalLikes)
	fmt.Fprintf(tw, "comments\t%d\n", overview.TotalComments)
	_ = tw.Flush()

	if len(view.Recent) > 0 {
		fmt.Fprintln(cmdCtx.Out, "\nrecent uploads:")
		writeVideoTable(cmdCtx, view.Recent)
	}
	return nil
}

func runMyVideos(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("my-videos", flag.ContinueOnError)
	page := fs.Int("page", 1, "listing page")
	search := fs.String("search", "", "search term")
	deleteID := fs.String("delete", "", "delete the video with this id")
	editID := fs.String("edit", "", "edit the video with this id")
	title := fs.String("title", "", "new title (with --edit)")
	description := fs.String("description", "", "new description (with --edit)")
	genre := fs.String("genre", "", "new genre (with --edit)")
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := guardScreen(cmdCtx, router.PathCreatorMyVideos); err != nil {
		return err
	}

	switch {
	case *deleteID != "":
		if err := cmdCtx.App.Creator.Delete(cmdCtx.Ctx, *deleteID); err != nil {
			return err
		}
		fmt.Fprintln(cmdCtx.Out, "video deleted")
		return nil
	case *editID != "":
		err := cmdCtx.App.Creator.Edit(cmdCtx.Ctx, *editID, app.EditParams{
			Title:       *title,
			Description: *description,
			Genre:       *genre,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmdCtx.Out, "video updated")
		return nil
	}

	view, err := cmdCtx.App.Creator.MyVideos(cmdCtx.Ctx, app.MyVideosParams{Page: *page, Search: *search})
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, view, *query)
	}
	writeVideoTable(cmdCtx, view.Videos)
	fmt.Fprintf(cmdCtx.Out, "page %d of %d\n", *page, view.TotalPages)
	return nil
}

func runUpload(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	title := fs.String("title", "", "video title (required)")
	description := fs.String("description", "", "video description")
	genre := fs.String("genre", "General", "video genre")
	metadata := fs.String("metadata", "", "free-form metadata")
	videoPath := fs.String("file", "", "path to the video file (required)")
	thumbnailPath := fs.String("thumbnail", "", "path to a thumbnail image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *videoPath == "" {
		return errors.New("--title and --file are required")
	}
	if err := guardScreen(cmdCtx, router.PathCreatorMyVideos); err != nil {
		return err
	}

	uploaded, err := cmdCtx.App.Creator.Upload(cmdCtx.Ctx, app.UploadParams{
		Title:         *title,
		Description:   *description,
		Genre:         *genre,
		Metadata:      *metadata,
		VideoPath:     *videoPath,
		ThumbnailPath: *thumbnailPath,
		Progress: func(sent, total int64) {
			if total > 0 {
				fmt.Fprintf(cmdCtx.Out, "\ruploading... %d%%", sent*100/total)
			}
		},
	})
	if err != nil {
		fmt.Fprintln(cmdCtx.Out)
		return err
	}
	fmt.Fprintf(cmdCtx.Out, "\nuploaded %q as %s\n", uploaded.Title, uploaded.ID)
	return nil
}

func runAnalytics(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: streamwave analytics <video-id>")
	}
	if err := guardScreen(cmdCtx, router.PathCreatorMyVideos); err != nil {
		return err
	}

	analytics, err := cmdCtx.App.Creator.Analytics(cmdCtx.Ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, analytics, *query)
	}
	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "title\t%s\n", analytics.Title)
	fmt.Fprintf(tw, "views\t%d\n", analytics.Views)
	fmt.Fprintf(tw, "likes\t%d\n", analytics.Likes)
	fmt.Fprintf(tw, "comments\t%d\n", analytics.Comments)
	fmt.Fprintf(tw, "watch time (s)\t%.0f\n", analytics.WatchTimeSecs)
	_ = tw.Flush()
	return nil
}

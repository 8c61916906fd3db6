package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/streamwave/streamwave-go/internal/app"
	"github.com/streamwave/streamwave-go/internal/domain/model"
	"github.com/streamwave/streamwave-go/internal/router"
)

func runHome(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("home", flag.ContinueOnError)
	page := fs.Int("page", 1, "feed page")
	limit := fs.Int("limit", 10, "videos per page")
	genre := fs.String("genre", "", "filter by genre")
	search := fs.String("search", "", "search term")
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := guardScreen(cmdCtx, router.PathConsumerHome); err != nil {
		return err
	}

	view, err := cmdCtx.App.Consumer.Home(cmdCtx.Ctx, app.HomeParams{
		Page:   *page,
		Limit:  *limit,
		Genre:  *genre,
		Search: *search,
	})
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, view, *query)
	}

	writeVideoTable(cmdCtx, view.Videos)
	p := view.Pagination
	fmt.Fprintf(cmdCtx.Out, "page %d of %d (%d videos)\n", p.CurrentPage, p.TotalPages, p.TotalVideos)
	return nil
}

func runVideo(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("video", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: streamwave video <video-id>")
	}
	videoID := fs.Arg(0)

	if err := guardScreen(cmdCtx, "/consumer/video/"+videoID); err != nil {
		return err
	}

	view, err := cmdCtx.App.Consumer.VideoDetails(cmdCtx.Ctx, videoID)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, view, *query)
	}

	v := view.Details.Video
	fmt.Fprintf(cmdCtx.Out, "%s\n", v.Title)
	if v.Description != "" {
		fmt.Fprintf(cmdCtx.Out, "%s\n", v.Description)
	}
	liked := " "
	if view.Liked {
		liked = "*"
	}
	fmt.Fprintf(cmdCtx.Out, "by %s | %d views | %d likes [%s]\n", v.CreatorName, v.Views, view.Details.TotalLikes, liked)
	fmt.Fprintf(cmdCtx.Out, "\ncomments (%d):\n", len(view.Details.Comments))
	for _, comment := range view.Details.Comments {
		fmt.Fprintf(cmdCtx.Out, "  %s: %s\n", comment.UserName, comment.Text)
	}
	return nil
}

func runLike(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("like", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: streamwave like <video-id>")
	}
	videoID := fs.Arg(0)

	if err := guardScreen(cmdCtx, "/consumer/video/"+videoID); err != nil {
		return err
	}

	// Render from the response, not the request: with rapid toggles the
	// backend's latest word is authoritative.
	result, err := cmdCtx.App.Consumer.ToggleLike(cmdCtx.Ctx, videoID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmdCtx.Out, "video now has %d likes\n", result.TotalLikes)
	return nil
}

func runComment(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ContinueOnError)
	text := fs.String("text", "", "comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *text == "" {
		return errors.New("usage: streamwave comment <video-id> --text <comment>")
	}
	videoID := fs.Arg(0)

	if err := guardScreen(cmdCtx, "/consumer/video/"+videoID); err != nil {
		return err
	}

	comments, err := cmdCtx.App.Consumer.AddComment(cmdCtx.Ctx, videoID, *text)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmdCtx.Out, "comment posted (%d comments on this video)\n", len(comments))
	return nil
}

func runLiked(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("liked", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw response")
	query := fs.String("query", "", "JMESPath projection over the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := guardScreen(cmdCtx, router.PathConsumerLiked); err != nil {
		return err
	}

	videos, err := cmdCtx.App.Consumer.LikedVideos(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return writeResult(cmdCtx.Out, videos, *query)
	}
	writeVideoTable(cmdCtx, videos)
	return nil
}

func writeVideoTable(cmdCtx *commandContext, videos []model.Video) {
	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCREATOR\tVIEWS\tLIKES")
	for _, v := range videos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", v.ID, v.Title, v.CreatorName, v.Views, v.Likes)
	}
	_ = tw.Flush()
}

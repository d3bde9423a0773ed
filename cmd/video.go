package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Taichi-iskw/media-catalog/internal/app"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/spf13/cobra"
)

// videoCmd represents the video command
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Video operations",
	Long:  `Create and list videos in the catalog.`,
}

// videoCreateCmd stores a new video
var videoCreateCmd = &cobra.Command{
	Use:   "create [VIDEO_ID] [CHANNEL_ID] [TITLE] [URL]",
	Short: "Create a video",
	Long: `Create a video. CHANNEL_ID is the numeric id of a stored channel.
The publish time defaults to now and can be set with --published-at (RFC3339).`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid channel id %q: %w", args[1], err)
		}
		videoURL, err := model.ParseURL(args[3])
		if err != nil {
			return err
		}

		publishedAt := time.Now().UTC()
		if raw, _ := cmd.Flags().GetString("published-at"); raw != "" {
			if publishedAt, err = time.Parse(time.RFC3339, raw); err != nil {
				return fmt.Errorf("invalid --published-at: %w", err)
			}
		}

		draft := model.DraftVideo{
			VideoID:     args[0],
			ChannelID:   channelID,
			Title:       args[2],
			URL:         videoURL,
			PublishedAt: publishedAt,
		}

		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			if err := a.Videos.Create(ctx, draft); err != nil {
				return fmt.Errorf("failed to create video: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Video %s created\n", draft.VideoID)
			return nil
		})
	},
}

// videoListCmd lists videos, optionally for one channel
var videoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		channelID, _ := cmd.Flags().GetInt64("channel")

		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			var (
				videos []model.Video
				err    error
			)
			if channelID > 0 {
				videos, err = a.Videos.ListByChannel(ctx, channelID, limit, offset)
			} else {
				videos, err = a.Videos.List(ctx, limit, offset)
			}
			if err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}
			return printJSON(cmd, videos)
		})
	},
}

func init() {
	videoCreateCmd.Flags().String("published-at", "", "Publish time in RFC3339 format")

	videoListCmd.Flags().Int("limit", 20, "Maximum number of videos to retrieve")
	videoListCmd.Flags().Int("offset", 0, "Number of videos to skip")
	videoListCmd.Flags().Int64("channel", 0, "Only list videos of this channel id")

	videoCmd.AddCommand(videoCreateCmd)
	videoCmd.AddCommand(videoListCmd)
	rootCmd.AddCommand(videoCmd)
}

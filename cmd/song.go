package cmd

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/media-catalog/internal/app"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Song operations",
}

var songSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search songs by title and channel name",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		channelName, _ := cmd.Flags().GetString("channel-name")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			songs, err := a.Songs.Search(ctx, mo.EmptyableToOption(title), mo.EmptyableToOption(channelName), limit, offset)
			if err != nil {
				return fmt.Errorf("failed to search songs: %w", err)
			}
			return printJSON(cmd, songs)
		})
	},
}

func init() {
	songSearchCmd.Flags().String("title", "", "Case-insensitive substring of the title")
	songSearchCmd.Flags().String("channel-name", "", "Channel name, case-insensitive exact match")
	songSearchCmd.Flags().Int("limit", 20, "Maximum number of songs to retrieve")
	songSearchCmd.Flags().Int("offset", 0, "Number of songs to skip")

	songCmd.AddCommand(songSearchCmd)
	rootCmd.AddCommand(songCmd)
}

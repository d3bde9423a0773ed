package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Taichi-iskw/media-catalog/internal/app"
	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Channel operations",
	Long:  `Create, look up and search channels in the catalog.`,
}

// channelCreateCmd stores a new channel
var channelCreateCmd = &cobra.Command{
	Use:   "create [CHANNEL_ID] [NAME] [ICON_URL]",
	Short: "Create a channel",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		iconURL, err := model.ParseURL(args[2])
		if err != nil {
			return err
		}
		draft := model.DraftChannel{ChannelID: args[0], Name: args[1], IconURL: iconURL}

		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			if err := a.Channels.Create(ctx, draft); err != nil {
				return fmt.Errorf("failed to create channel: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Channel %s created\n", draft.ChannelID)
			return nil
		})
	},
}

// channelGetCmd prints one channel
var channelGetCmd = &cobra.Command{
	Use:   "get [CHANNEL_ID]",
	Short: "Show a channel by its channel ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			found, err := a.Channels.FindByID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get channel: %w", err)
			}
			channel, ok := found.Get()
			if !ok {
				return apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("channel %q not found", args[0]))
			}
			return printJSON(cmd, channel)
		})
	},
}

// channelSearchCmd searches channels by name
var channelSearchCmd = &cobra.Command{
	Use:   "search [PATTERN]",
	Short: "Search channels whose name contains PATTERN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.Application) error {
			channels, err := a.Channels.SearchByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to search channels: %w", err)
			}
			return printJSON(cmd, channels)
		})
	},
}

func init() {
	channelCmd.AddCommand(channelCreateCmd)
	channelCmd.AddCommand(channelGetCmd)
	channelCmd.AddCommand(channelSearchCmd)
	rootCmd.AddCommand(channelCmd)
}

package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

const historyPageSize = 100

// Bulk delete only accepts messages younger than this; older ones must
// be deleted one by one.
const bulkDeleteMaxAge = 14 * 24 * time.Hour

// historyAPI is the slice of the session the bulk clear needs.
type historyAPI interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// ClearBotMessages deletes every message authored by the bot in the
// channel, paging through history newest-first in batches of up to 100
// until a page comes back empty. Messages young enough for bulk delete
// go through one bulk call per page; the rest are deleted individually,
// best-effort. Returns the number of messages deleted.
func ClearBotMessages(ctx context.Context, api historyAPI, channelID, botUserID string, logger *slog.Logger) (int, error) {
	deleted := 0
	beforeID := ""

	for {
		page, err := api.ChannelMessages(channelID, historyPageSize, beforeID, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return deleted, fmt.Errorf("fetch history: %w", err)
		}
		if len(page) == 0 {
			break
		}

		cutoff := time.Now().Add(-bulkDeleteMaxAge)
		var bulk, single []string
		for _, m := range page {
			if m.Author == nil || m.Author.ID != botUserID {
				continue
			}
			if m.Timestamp.After(cutoff) {
				bulk = append(bulk, m.ID)
			} else {
				single = append(single, m.ID)
			}
		}

		// Bulk delete needs at least two messages.
		if len(bulk) >= 2 {
			if err := api.ChannelMessagesBulkDelete(channelID, bulk, discordgo.WithContext(ctx)); err != nil {
				logger.Warn("bulk delete failed, falling back to individual deletes", "count", len(bulk), "error", err)
				single = append(single, bulk...)
			} else {
				deleted += len(bulk)
			}
		} else {
			single = append(single, bulk...)
		}

		for _, id := range single {
			if err := api.ChannelMessageDelete(channelID, id, discordgo.WithContext(ctx)); err != nil {
				logger.Warn("could not delete message", "message_id", id, "error", err)
				continue
			}
			deleted++
		}

		beforeID = page[len(page)-1].ID
	}

	return deleted, nil
}

package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const botID = "bot-1"

// fakeHistory serves canned history pages and records deletions.
type fakeHistory struct {
	pages      [][]*discordgo.Message
	fetches    int
	bulkCalls  [][]string
	singles    []string
	bulkErr    error
	deleteErrs map[string]error
}

func (f *fakeHistory) ChannelMessages(_ string, _ int, beforeID, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.fetches++
	if f.fetches > len(f.pages) {
		return nil, nil
	}
	return f.pages[f.fetches-1], nil
}

func (f *fakeHistory) ChannelMessagesBulkDelete(_ string, messages []string, _ ...discordgo.RequestOption) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.bulkCalls = append(f.bulkCalls, messages)
	return nil
}

func (f *fakeHistory) ChannelMessageDelete(_ string, messageID string, _ ...discordgo.RequestOption) error {
	if err, ok := f.deleteErrs[messageID]; ok {
		return err
	}
	f.singles = append(f.singles, messageID)
	return nil
}

func msg(id, author string, age time.Duration) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		Author:    &discordgo.User{ID: author},
		Timestamp: time.Now().Add(-age),
	}
}

func TestClearBotMessages_BulkDeletesRecentBotMessages(t *testing.T) {
	api := &fakeHistory{
		pages: [][]*discordgo.Message{{
			msg("m1", botID, time.Hour),
			msg("m2", "someone-else", time.Hour),
			msg("m3", botID, 2*time.Hour),
		}},
	}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(api.bulkCalls) != 1 || len(api.bulkCalls[0]) != 2 {
		t.Errorf("bulk calls = %v, want one call with both bot messages", api.bulkCalls)
	}
	if len(api.singles) != 0 {
		t.Errorf("individual deletes = %v, want none", api.singles)
	}
}

func TestClearBotMessages_OldMessagesDeletedIndividually(t *testing.T) {
	api := &fakeHistory{
		pages: [][]*discordgo.Message{{
			msg("old-1", botID, 20*24*time.Hour),
			msg("old-2", botID, 30*24*time.Hour),
		}},
	}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(api.bulkCalls) != 0 {
		t.Errorf("bulk calls = %v, want none for >14d messages", api.bulkCalls)
	}
	if len(api.singles) != 2 {
		t.Errorf("individual deletes = %v, want both", api.singles)
	}
}

func TestClearBotMessages_SingleRecentMessageSkipsBulk(t *testing.T) {
	api := &fakeHistory{
		pages: [][]*discordgo.Message{{msg("m1", botID, time.Hour)}},
	}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if len(api.bulkCalls) != 0 {
		t.Errorf("bulk delete requires two messages, got calls %v", api.bulkCalls)
	}
}

func TestClearBotMessages_BulkFailureFallsBackToIndividual(t *testing.T) {
	api := &fakeHistory{
		pages: [][]*discordgo.Message{{
			msg("m1", botID, time.Hour),
			msg("m2", botID, time.Hour),
		}},
		bulkErr: errors.New("messages too old"),
	}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2 via fallback", deleted)
	}
	if len(api.singles) != 2 {
		t.Errorf("individual deletes = %v, want both after fallback", api.singles)
	}
}

func TestClearBotMessages_PerMessageFailureSwallowed(t *testing.T) {
	api := &fakeHistory{
		pages: [][]*discordgo.Message{{
			msg("old-1", botID, 20*24*time.Hour),
			msg("old-2", botID, 20*24*time.Hour),
		}},
		deleteErrs: map[string]error{"old-1": errors.New("already deleted")},
	}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1 (old-1 failed)", deleted)
	}
}

func TestClearBotMessages_PaginatesUntilEmptyPage(t *testing.T) {
	pageOne := make([]*discordgo.Message, 0, 100)
	for n := 0; n < 100; n++ {
		pageOne = append(pageOne, msg(fmt.Sprintf("p1-%d", n), botID, time.Hour))
	}
	pageTwo := []*discordgo.Message{msg("p2-0", botID, time.Hour)}

	api := &fakeHistory{pages: [][]*discordgo.Message{pageOne, pageTwo}}

	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 101 {
		t.Errorf("deleted = %d, want 101", deleted)
	}
	// Two content pages plus the final empty page.
	if api.fetches != 3 {
		t.Errorf("history fetches = %d, want 3", api.fetches)
	}
}

func TestClearBotMessages_EmptyChannel(t *testing.T) {
	api := &fakeHistory{}
	deleted, err := ClearBotMessages(context.Background(), api, "chan-1", botID, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}

package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/meera/vyaara/internal/classify"
)

const welcomeMessage = "👋 **Welcome to Vyaara!** 🌷\n\n" +
	"I’m your AI companion — your guide, mentor, teacher, and friend! 🌞\n\n" +
	"🌟 I can help you:\n" +
	"✅ Build habits & track daily activities\n" +
	"✅ Stay motivated with milestones & celebrations\n" +
	"✅ Understand and respond to your emotions\n" +
	"✅ Guide you through journaling & reflection\n" +
	"✅ Be your safe space when you’re feeling low\n\n" +
	"🌷 What’s your name?"

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore own messages
	if m.Author.ID == s.State.User.ID {
		return
	}

	// Only respond to DMs or when mentioned
	isDM := m.GuildID == ""
	isMentioned := false
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			isMentioned = true
			break
		}
	}
	if !isDM && !isMentioned {
		return
	}

	content := strings.TrimSpace(stripMention(m.Content, s.State.User.ID))
	if content == "" {
		return
	}

	userID := m.Author.ID
	if err := b.store.EnsureUser(userID); err != nil {
		log.Printf("initializing user %s: %v", userID, err)
	}

	if isGreeting(content) {
		b.reply(s, m.ChannelID, welcomeMessage)
		return
	}

	if name, ok := parseName(content); ok {
		if err := b.store.SetName(userID, name); err != nil {
			log.Printf("saving name for %s: %v", userID, err)
		}
		b.reply(s, m.ChannelID, fmt.Sprintf("🌷 Lovely to meet you, %s! I’ll remember that. 🌞", name))
		return
	}

	if goal, ok := parseGoal(content); ok {
		if err := b.store.AddGoal(userID, goal); err != nil {
			log.Printf("saving goal for %s: %v", userID, err)
		}
		b.reply(s, m.ChannelID, "🌱 Goal saved! I’m rooting for you. 🌟")
		return
	}

	if b.handleSleepWake(s, m.ChannelID, userID, content) {
		return
	}

	if activities, ok := parseRoutine(content); ok {
		if err := b.store.SetActivities(userID, activities); err != nil {
			log.Printf("saving activities for %s: %v", userID, err)
		}
		b.reply(s, m.ChannelID, "✅ Your daily routine is saved. 🌷 I'll send you gentle reminders!")
		return
	}

	b.converse(s, m.ChannelID, userID, content)
}

// handleSleepWake captures "wake at 6am" / "sleep at 10pm" settings.
// Reports whether the message was one of those.
func (b *Bot) handleSleepWake(s *discordgo.Session, channelID, userID, content string) bool {
	matched := false
	if hhmm, ok := parseWake(content); ok {
		if err := b.store.SetWakeTime(userID, hhmm); err != nil {
			log.Printf("saving wake time for %s: %v", userID, err)
		}
		matched = true
	}
	if hhmm, ok := parseSleep(content); ok {
		if err := b.store.SetSleepTime(userID, hhmm); err != nil {
			log.Printf("saving sleep time for %s: %v", userID, err)
		}
		matched = true
	}
	if matched {
		b.reply(s, channelID, "🌙 Got it — I’ll greet you at those times. ☀️")
	}
	return matched
}

// converse is the free-text path: bookkeeping, then the completion
// service.
func (b *Bot) converse(s *discordgo.Session, channelID, userID, content string) {
	if _, err := b.store.UpdateStreak(userID); err != nil {
		log.Printf("updating streak for %s: %v", userID, err)
	}
	if err := b.store.RecordConversation(userID); err != nil {
		log.Printf("counting conversation for %s: %v", userID, err)
	}

	tone := classify.AnalyzeTone(content)
	if err := b.store.SetMood(userID, string(tone)); err != nil {
		log.Printf("saving mood for %s: %v", userID, err)
	}
	if err := b.journal.Append(time.Now().Format("2006-01-02"), userID, content, string(tone)); err != nil {
		log.Printf("journaling message for %s: %v", userID, err)
	}

	// Show typing indicator
	s.ChannelTyping(channelID)

	reply, err := b.agent.Respond(context.Background(), content)
	if err != nil {
		log.Printf("completion error for %s: %v", userID, err)
		// Surfaced verbatim; the bot never crashes on a completion failure.
		reply = "⚡️ completion error: " + err.Error()
	}
	b.reply(s, channelID, reply)
}

func (b *Bot) reply(s *discordgo.Session, channelID, content string) {
	for _, chunk := range splitMessage(content, maxMessageLen) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			log.Printf("sending reply: %v", err)
		}
	}
}

func stripMention(s, userID string) string {
	s = strings.ReplaceAll(s, "<@"+userID+">", "")
	s = strings.ReplaceAll(s, "<@!"+userID+">", "")
	return s
}

func splitMessage(s string, maxLen int) []string {
	if len(s) <= maxLen {
		return []string{s}
	}
	var chunks []string
	for len(s) > 0 {
		end := maxLen
		if end > len(s) {
			end = len(s)
		}
		// Try to split at a newline
		if idx := strings.LastIndex(s[:end], "\n"); idx > 0 {
			end = idx + 1
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/meera/vyaara/internal/agent"
	"github.com/meera/vyaara/internal/journal"
	"github.com/meera/vyaara/internal/store"
)

type Bot struct {
	*Sender
	agent   *agent.Agent
	store   *store.Store
	journal *journal.Journal
}

func NewBot(token string, ag *agent.Agent, st *store.Store, jn *journal.Journal) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	bot := &Bot{Sender: &Sender{session: s}, agent: ag, store: st, journal: jn}
	s.AddHandler(bot.onMessage)
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}

	log.Printf("Discord bot connected as %s", s.State.User.Username)
	return bot, nil
}

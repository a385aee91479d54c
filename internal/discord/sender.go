package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Discord's message length limit.
const maxMessageLen = 2000

// Sender delivers messages to users over DM. The batch subcommands use
// it standalone; the bot embeds it.
type Sender struct {
	session *discordgo.Session
}

// NewSender opens a handler-less session, for one-shot batch runs.
func NewSender(token string) (*Sender, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}
	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}
	return &Sender{session: s}, nil
}

func (s *Sender) Close() {
	s.session.Close()
}

// Send DMs a user, splitting at the message length limit.
func (s *Sender) Send(userID, content string) error {
	ch, err := s.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("opening DM channel: %w", err)
	}
	for _, chunk := range splitMessage(content, maxMessageLen) {
		if _, err := s.session.ChannelMessageSend(ch.ID, chunk); err != nil {
			return fmt.Errorf("sending DM: %w", err)
		}
	}
	return nil
}

// SendSticker delivers a milestone badge. Bots can only send stickers
// from guild packs, so the badge goes out as a plain message.
func (s *Sender) SendSticker(userID, sticker string) error {
	return s.Send(userID, sticker)
}

package notify

import (
	"log"
	"math/rand"

	"github.com/meera/vyaara/internal/journal"
)

var goodMorningMessages = []string{
	"☀️ Good morning! 🌷 Today is a fresh canvas. Whatever you create, make it beautiful.",
	"🌅 A new day is here, and so are new possibilities. Stay hopeful and strong! 🌱",
	"☕️ Good morning! Remember: The sun shines for you, and so do I. 🌷",
}

var goodNightMessages = []string{
	"🌙 Good night, beautiful soul. 🌷 Rest well — tomorrow is a new chapter, and you deserve it.",
	"🌷 It's okay to slow down and rest. You're doing your best, and that's enough. 🌙",
	"🌅 The stars are shining for you tonight. Let them guide you to peace and rest. 🌷",
}

// Morning broadcasts a random good-morning line to every user in the
// journal registry.
func Morning(jn *journal.Journal, sender Sender) {
	broadcast(jn, sender, goodMorningMessages)
}

// Night broadcasts a random good-night line to every user in the journal
// registry.
func Night(jn *journal.Journal, sender Sender) {
	broadcast(jn, sender, goodNightMessages)
}

func broadcast(jn *journal.Journal, sender Sender, pool []string) {
	ids, err := jn.UserIDs()
	if err != nil {
		log.Printf("broadcast: listing journal users: %v", err)
		return
	}
	for _, id := range ids {
		send(sender, id, pool[rand.Intn(len(pool))])
	}
}

package notify

import (
	"log"
	"time"

	"github.com/meera/vyaara/internal/store"
)

// checkInMessages is the generic rotation pool; the day of month picks
// one so users don't get the same line every day.
var checkInMessages = []string{
	"🌱 Just checking in — drink some water and take a deep breath! 💙",
	"☕ You're doing great today. I’m proud of you.",
	"🌺 Remember: Every step you take counts.",
	"🌅 Take a moment to acknowledge one thing you're grateful for.",
	"🌷 You matter. Whatever you're feeling is okay.",
	"🌳 Stay grounded and present. You’re growing every day.",
}

const comfortMessage = "💙 It's okay to have hard days. Remember, you’re not alone — you matter and you’re loved. 🌷\n" +
	"If you’d like, I’m here to listen, or we can try a quick relaxation exercise together. 🌱"

const encouragementMessage = "🌷 You’re doing so well! Keep nurturing yourself and sharing that beautiful energy. 🌞\n" +
	"I’m proud of every step you’re taking. 🌱"

var negativeMoods = map[string]bool{
	"negative": true, "sad": true, "lonely": true, "tired": true, "depressed": true,
}

var positiveMoods = map[string]bool{
	"positive": true, "happy": true, "excited": true,
}

// CheckInText picks the check-in line for a user's last recorded mood.
// Negative moods get comfort, positive ones encouragement, everything
// else rotates through the generic pool by day of month.
func CheckInText(mood string, dayOfMonth int) string {
	switch {
	case negativeMoods[mood]:
		return comfortMessage
	case positiveMoods[mood]:
		return encouragementMessage
	default:
		return checkInMessages[dayOfMonth%len(checkInMessages)]
	}
}

// CheckIns sends a daily check-in to every known user, conditioned on
// their last recorded mood.
func CheckIns(st *store.Store, sender Sender) {
	ids, err := st.UserIDs()
	if err != nil {
		log.Printf("check-ins: listing users: %v", err)
		return
	}
	day := time.Now().Day()
	for _, id := range ids {
		rec, err := st.Get(id)
		if err != nil {
			log.Printf("check-ins: loading user %s: %v", id, err)
			continue
		}
		send(sender, id, CheckInText(rec.Mood, day))
	}
}

package notify

import (
	"fmt"
	"log"
	"strings"

	"github.com/meera/vyaara/internal/store"
)

// Fixed elapsed-day milestones. Messages take the user's name.
var defaultMilestones = map[int]string{
	7:   "🌷 It's been 1 week, {name}! Thanks for sharing this space with me. 🌱 You're growing every day!",
	30:  "🌳 It's been a whole month, {name}! 🌈 I'm so proud of your resilience and warmth. Keep going!",
	100: "🌟 100 days together, {name}! What a beautiful milestone. 🌺 Stay strong and hopeful — I'm with you!",
}

// Optional sticker payload per milestone day. None configured yet;
// populate with sticker references to send a badge after the text.
var badges = map[int]string{}

const customMilestoneTemplate = "🌷 {name}, we've hit a special milestone: {milestone}! 🌟"

// MilestoneMessage returns the celebration text and sticker for an exact
// elapsed-day match, or empty strings when today is not a milestone.
// Day 6 and day 8 yield nothing; day 7 yields the one-week message.
func MilestoneMessage(daysSinceStart int, name string, customDays []int) (text, sticker string) {
	if msg, ok := defaultMilestones[daysSinceStart]; ok {
		return fillName(msg, name), badges[daysSinceStart]
	}
	for _, day := range customDays {
		if daysSinceStart == day {
			msg := fillName(customMilestoneTemplate, name)
			return strings.ReplaceAll(msg, "{milestone}", fmt.Sprintf("%d days", day)), ""
		}
	}
	return "", ""
}

func fillName(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}

// Milestones checks every known user and sends celebratory messages for
// exact day-count matches.
func Milestones(st *store.Store, sender Sender) {
	ids, err := st.UserIDs()
	if err != nil {
		log.Printf("milestones: listing users: %v", err)
		return
	}
	for _, id := range ids {
		rec, err := st.Get(id)
		if err != nil {
			log.Printf("milestones: loading user %s: %v", id, err)
			continue
		}
		sum, err := st.Summary(id)
		if err != nil {
			log.Printf("milestones: summarizing user %s: %v", id, err)
			continue
		}

		text, sticker := MilestoneMessage(sum.DaysSinceStart, rec.Name, sum.CustomDays)
		if text == "" {
			continue
		}
		send(sender, id, text)
		if sticker != "" {
			if err := sender.SendSticker(id, sticker); err != nil {
				log.Printf("milestones: could not send sticker to %s: %v", id, err)
			}
		}
	}
}

// Package notify holds the batch jobs: milestone celebrations, daily
// check-ins, and the morning/night broadcasts. Each is a single pass
// over the known users, designed to be invoked by an external cron (the
// subcommands) or by the in-process scheduler.
package notify

import "log"

// Sender delivers a message to a user. Delivery errors are logged and
// the user skipped — a batch run never aborts on one bad recipient.
type Sender interface {
	Send(userID, text string) error
	SendSticker(userID, sticker string) error
}

func send(sender Sender, userID, text string) {
	if err := sender.Send(userID, text); err != nil {
		log.Printf("could not send message to %s: %v", userID, err)
	}
}

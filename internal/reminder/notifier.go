package reminder

import (
	"log"

	authrepo "habitus-backend/internal/auth/repository"
)

// Notifier delivers a reminder to a user's devices. The actual push
// transport is provided by the embedding application; this service only
// decides when and what to send.
type Notifier interface {
	Send(userID, title, body string) error
}

// LogNotifier is the default Notifier: it logs the reminder together with
// the number of registered devices it would have reached.
type LogNotifier struct {
	deviceRepo authrepo.DeviceTokenRepository
}

// NewLogNotifier creates a LogNotifier backed by the device-token registry.
func NewLogNotifier(deviceRepo authrepo.DeviceTokenRepository) *LogNotifier {
	return &LogNotifier{deviceRepo: deviceRepo}
}

func (n *LogNotifier) Send(userID, title, body string) error {
	devices := 0
	if n.deviceRepo != nil {
		tokens, err := n.deviceRepo.GetTokensByUserID(userID)
		if err != nil {
			log.Printf("[Reminder] device lookup for user %s failed: %v", userID, err)
		} else {
			devices = len(tokens)
		}
	}
	log.Printf("[Reminder] user=%s devices=%d title=%q body=%q", userID, devices, title, body)
	return nil
}

package recruiting

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	confirmCustomIDPrefix = "confirm"
	confirmAnswerYes      = "yes"
	confirmAnswerNo       = "no"

	applyCustomIDPrefix = "apply"

	transferConfirmTimeout = 10 * time.Second
)

// ApplyButtonCustomID builds the component custom ID for an apply button
// targeting the given guild.
func ApplyButtonCustomID(guildID string) string {
	return applyCustomIDPrefix + ":" + guildID
}

// ParseApplyButtonCustomID extracts the target guild from an apply button's
// custom ID. ok is false for components that are not apply buttons.
func ParseApplyButtonCustomID(customID string) (string, bool) {
	guildID, found := strings.CutPrefix(customID, applyCustomIDPrefix+":")
	if !found || guildID == "" {
		return "", false
	}
	return guildID, true
}

// confirmationRegistry holds in-flight Yes/No prompts. Each prompt is keyed
// by a one-shot token carried in the button custom IDs, and only the user the
// prompt was shown to may answer it. Timeouts are an outcome, not an error.
type confirmationRegistry struct {
	mu      sync.Mutex
	waiters map[string]*confirmationWaiter
}

type confirmationWaiter struct {
	discordUserID string
	result        chan bool
}

func newConfirmationRegistry() *confirmationRegistry {
	return &confirmationRegistry{waiters: make(map[string]*confirmationWaiter)}
}

func (r *confirmationRegistry) register(token, discordUserID string) <-chan bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := &confirmationWaiter{discordUserID: discordUserID, result: make(chan bool, 1)}
	r.waiters[token] = w
	return w.result
}

func (r *confirmationRegistry) drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.waiters, token)
}

// deliver routes an answer to its waiter. Returns false when no prompt with
// that token is pending or the answering user is not the one asked.
func (r *confirmationRegistry) deliver(token, discordUserID string, confirmed bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.waiters[token]
	if !ok || w.discordUserID != discordUserID {
		return false
	}
	delete(r.waiters, token)
	w.result <- confirmed
	return true
}

// confirmCustomID builds the component custom ID for one answer button.
func confirmCustomID(token, answer string) string {
	return confirmCustomIDPrefix + ":" + token + ":" + answer
}

// parseConfirmCustomID extracts the prompt token and answer from a component
// custom ID. ok is false for components that are not confirmation buttons.
func parseConfirmCustomID(customID string) (token string, confirmed bool, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != confirmCustomIDPrefix {
		return "", false, false
	}
	switch parts[2] {
	case confirmAnswerYes:
		return parts[1], true, true
	case confirmAnswerNo:
		return parts[1], false, true
	}
	return "", false, false
}

// waitForConfirmation blocks until the prompt is answered, the timeout
// elapses or ctx is cancelled. answered is false on timeout/cancel, in which
// case confirmed is always false.
func (u *RecruitingUseCase) waitForConfirmation(
	ctx context.Context,
	token, discordUserID string,
) (confirmed bool, answered bool) {
	result := u.confirmations.register(token, discordUserID)
	defer u.confirmations.drop(token)

	timer := time.NewTimer(transferConfirmTimeout)
	defer timer.Stop()

	select {
	case confirmed = <-result:
		return confirmed, true
	case <-timer.C:
		return false, false
	case <-ctx.Done():
		return false, false
	}
}

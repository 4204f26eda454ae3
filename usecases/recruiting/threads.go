package recruiting

import (
	"fmt"
	"log"
	"sync"

	"guildbot/clients"
	"guildbot/models"
)

// Created threads auto-archive after a week of inactivity; the pairing
// resolver looks through archived threads too, so archival never loses a
// conversation.
const threadAutoArchiveMinutes = 10080

// keyedMutex serializes work per string key. Used to keep two concurrent
// events for the same (channel, user) from each creating a thread.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// getOrCreateUserThread finds the user's private thread under the channel, or
// creates it. The thread name is the only registry: there is no database-side
// thread table, so lookup scans active and archived private threads for a
// name whose suffix matches the user's Discord ID.
func (u *RecruitingUseCase) getOrCreateUserThread(
	discordChannelID string,
	user *models.User,
) (*clients.DiscordThread, error) {
	unlock := u.threadLocks.lock(discordChannelID + "|" + user.DiscordUserID)
	defer unlock()

	threads, err := u.discordClient.ListPrivateThreads(discordChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list private threads: %w", err)
	}

	for _, thread := range threads {
		if id, ok := ExtractApplicantID(thread.Name); ok && id == user.DiscordUserID {
			return thread, nil
		}
	}

	name := ApplicantThreadName(user.DisplayName, user.DiscordUserID)
	log.Printf("🧵 Creating private thread %q under channel %s", name, discordChannelID)

	thread, err := u.discordClient.CreatePrivateThread(discordChannelID, name, threadAutoArchiveMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to create private thread: %w", err)
	}
	return thread, nil
}

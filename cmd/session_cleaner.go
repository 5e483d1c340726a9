package main

import (
	"context"
	"log"
	"time"

	"founditBack/internal/repositories"
)

const sessionCleanerTimeout = 1 * time.Minute

// startSessionCleaner clears expired refresh tokens once a day so stale
// sessions cannot be replayed long after their expiry.
func startSessionCleaner(ctx context.Context, repo *repositories.UserRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, sessionCleanerTimeout)
			purged, err := repo.PurgeExpiredSessions(runCtx, time.Now())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("session cleaner: failed to purge expired sessions: %v", err)
				}
			} else if purged > 0 && infoLog != nil {
				infoLog.Printf("session cleaner: purged %d expired sessions", purged)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}

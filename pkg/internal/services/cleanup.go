package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

const cleanupRetention = 30 * 24 * time.Hour

// DoAutoDatabaseCleanup prunes soft-deleted posts and comments that
// fell out of the retention window.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-cleanupRetention)
	log.Debug().Time("deadline", deadline).Msg("Doing database cleanup...")

	var count int64
	for _, model := range []any{
		&models.Post{},
		&models.Comment{},
	} {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", deadline).
			Delete(model)
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Done database cleanup.")
}

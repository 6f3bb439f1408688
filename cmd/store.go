package cmd

import (
	"log"

	config "taskflow.app/taskflow/internal/configs"
	"taskflow.app/taskflow/internal/stores"
)

// newStore selects the authoritative backend once, from configuration:
// the cloud store when a database and identity are present, the local
// blob when no database is configured, and nothing at all when the
// database is configured but nobody is signed in.
func newStore(cfg config.Config) stores.Store {
	if !cfg.RemoteConfigured() {
		return stores.NewLocal(cfg.LocalStorePath)
	}

	if cfg.UserID == "" {
		log.Println("DATABASE_DSN is set but TASK_USER_ID is empty; tasks stay empty until an identity is configured")
		return nil
	}

	db := config.NewDatabaseClient(cfg.DatabaseDSN)
	return stores.NewRemote(db, cfg.UserID)
}

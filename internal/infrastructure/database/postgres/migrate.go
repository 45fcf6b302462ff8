package postgres

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// RunMigrations applies every *.sql file in dir in lexical order, each inside
// its own transaction.
func RunMigrations(db *sqlx.DB, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Error().Err(err).Str("component", "RunMigrations").Str("file", file).Msg("migration failed")
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}

		log.Info().Str("component", "RunMigrations").Str("file", file).Msg("migration applied")
	}

	return nil
}

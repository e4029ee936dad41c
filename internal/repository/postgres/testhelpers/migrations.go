package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations применяет все *.up.sql из каталога в порядке имён.
// Миграции идемпотентны (IF NOT EXISTS), повторный запуск безопасен.
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	files, err := migrationFiles(migrationsPath, ".up.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)
	return execFiles(db, migrationsPath, files)
}

// RollbackMigrations применяет *.down.sql в обратном порядке
func RollbackMigrations(db *sql.DB, migrationsPath string) error {
	files, err := migrationFiles(migrationsPath, ".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return execFiles(db, migrationsPath, files)
}

func migrationFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

func execFiles(db *sql.DB, dir string, files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}

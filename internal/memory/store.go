// Package memory is a sqlite-backed translation memory: every saved
// catalog feeds it, and untranslated entries can ask it for the most
// recent translation of the same source text.
package memory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/potui/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS translations (
  msgid TEXT NOT NULL,
  msgctxt TEXT NOT NULL DEFAULT '',
  language TEXT NOT NULL DEFAULT '',
  msgstr TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (msgid, msgctxt, language)
);
`
	_, err := s.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record upserts every translated, non-fuzzy entry. Untranslated and
// fuzzy entries are skipped so the memory only holds reviewed text.
func (s *Store) Record(ctx context.Context, language string, entries []catalog.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO translations (msgid, msgctxt, language, msgstr, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(msgid, msgctxt, language) DO UPDATE SET
  msgstr=excluded.msgstr,
  updated_at=excluded.updated_at
`)
	if err != nil {
		return fmt.Errorf("prepare record statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, entry := range entries {
		if !entry.IsTranslated {
			continue
		}
		_, err := stmt.ExecContext(ctx, entry.Msgid, entry.Msgctxt, language, entry.Msgstr, now)
		if err != nil {
			return fmt.Errorf("record translation %q: %w", entry.Msgid, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Suggest returns the remembered translation for msgid, preferring an
// exact context match and falling back to the most recent translation
// of the same msgid in any context. ok is false when nothing matches.
func (s *Store) Suggest(ctx context.Context, language, msgid, msgctxt string) (msgstr string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
SELECT msgstr FROM translations
WHERE msgid = ? AND msgctxt = ? AND language = ?
`, msgid, msgctxt, language).Scan(&msgstr)
	if err == nil {
		return msgstr, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", false, fmt.Errorf("query translation: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
SELECT msgstr FROM translations
WHERE msgid = ? AND language = ?
ORDER BY updated_at DESC
LIMIT 1
`, msgid, language).Scan(&msgstr)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query translation fallback: %w", err)
	}
	return msgstr, true, nil
}

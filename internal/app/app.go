// Package app wires catalog I/O, the translation memory and logging
// behind one service used by the CLI and the terminal UI.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glabrego/potui/internal/catalog"
)

// TranslationMemory is the subset of the memory store the service
// uses. A nil memory disables recording and suggestions.
type TranslationMemory interface {
	Record(ctx context.Context, language string, entries []catalog.Entry) error
	Suggest(ctx context.Context, language, msgid, msgctxt string) (string, bool, error)
}

type Service struct {
	memory   TranslationMemory
	language string
	log      zerolog.Logger
}

// NewService builds a Service. language overrides the catalog's own
// Language header for memory lookups; leave it empty to follow the
// header.
func NewService(memory TranslationMemory, language string, log zerolog.Logger) *Service {
	return &Service{memory: memory, language: language, log: log}
}

// OpenCatalog loads a PO file, reporting parse diagnostics as
// warnings and a stats summary at info.
func (s *Service) OpenCatalog(path string) (*catalog.Catalog, error) {
	c, diags, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	s.logDiagnostics(path, diags)
	s.logStats(c)
	return c, nil
}

// CreateCatalog returns a new empty catalog with the default header.
// Nothing touches the disk until the first save.
func (s *Service) CreateCatalog(path string) *catalog.Catalog {
	s.log.Info().Str("path", path).Msg("creating new catalog")
	return catalog.New(path)
}

// InstantiateTemplate builds a fresh PO at targetPath from the POT
// template at potPath.
func (s *Service) InstantiateTemplate(potPath, targetPath string) (*catalog.Catalog, error) {
	c, diags, err := catalog.LoadTemplate(potPath, targetPath)
	if err != nil {
		return nil, fmt.Errorf("instantiate template: %w", err)
	}
	s.logDiagnostics(potPath, diags)
	s.logStats(c)
	return c, nil
}

// SaveCatalog persists the catalog, then records its translations
// into the memory. A memory failure is logged, not returned: the file
// on disk is already safe.
func (s *Service) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	if err := c.Save(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	s.log.Info().Str("path", c.Path).Msg("catalog saved")

	if s.memory == nil {
		return nil
	}
	if err := s.memory.Record(ctx, s.languageFor(c), c.Entries); err != nil {
		s.log.Warn().Err(err).Msg("record translations")
	}
	return nil
}

// Suggest looks up a remembered translation for an untranslated
// entry. Lookup failures degrade to "no suggestion".
func (s *Service) Suggest(ctx context.Context, c *catalog.Catalog, e catalog.Entry) (string, bool) {
	if s.memory == nil || e.IsTranslated {
		return "", false
	}
	msgstr, ok, err := s.memory.Suggest(ctx, s.languageFor(c), e.Msgid, e.Msgctxt)
	if err != nil {
		s.log.Warn().Err(err).Str("msgid", e.Msgid).Msg("translation memory lookup")
		return "", false
	}
	return msgstr, ok
}

func (s *Service) languageFor(c *catalog.Catalog) string {
	if s.language != "" {
		return s.language
	}
	return c.Header.Value("Language")
}

func (s *Service) logDiagnostics(path string, diags []catalog.Diagnostic) {
	for _, d := range diags {
		s.log.Warn().Str("path", path).Int("line", d.Line).Msg(d.Message)
	}
}

func (s *Service) logStats(c *catalog.Catalog) {
	total, translated, fuzzy := c.Stats()
	s.log.Info().
		Str("path", c.Path).
		Int("entries", total).
		Int("translated", translated).
		Int("fuzzy", fuzzy).
		Msg("catalog opened")
}

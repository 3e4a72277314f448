// Package checker scans documentation for missing link targets and legacy path references.
package checker

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/docscheck/internal/models"
	"github.com/starford/docscheck/internal/parser"
	"github.com/starford/docscheck/internal/storage"
)

// DefaultPatterns are the documentation globs checked when none are configured.
var DefaultPatterns = []string{
	"Docs/**/*.md",
	"README.md",
	"CHANGELOG.md",
	"TODO.md",
	"API_REFERENCE.md",
	"CONTRIBUTING.md",
	"AGENTS.md",
	"WARP.md",
}

// DefaultLegacyPaths lists moved view files, each keyed with and without a
// leading slash. Order is the order findings are reported in.
var DefaultLegacyPaths = []models.LegacyPath{
	{Legacy: "Views/OnboardingFlowView.swift", Replacement: "Views/Onboarding/OnboardingFlowView.swift"},
	{Legacy: "/Views/OnboardingFlowView.swift", Replacement: "Views/Onboarding/OnboardingFlowView.swift"},
	{Legacy: "Views/SettingsView.swift", Replacement: "Views/Settings/SettingsView.swift"},
	{Legacy: "/Views/SettingsView.swift", Replacement: "Views/Settings/SettingsView.swift"},
}

// Checker runs scan passes over a project.
type Checker struct {
	store    storage.Provider
	patterns []string
	legacy   []models.LegacyPath
	logger   *slog.Logger
}

// New creates a Checker reading through store.
func New(store storage.Provider, patterns []string, legacy []models.LegacyPath, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{store: store, patterns: patterns, legacy: legacy, logger: logger}
}

// Scan discovers every documentation file and checks each one once.
// A file that cannot be read aborts the pass; findings never do.
func (c *Checker) Scan() (*models.Report, error) {
	files, err := c.store.Discover(c.patterns)
	if err != nil {
		return nil, fmt.Errorf("checker: discover: %w", err)
	}

	report := &models.Report{Files: files}
	for _, rel := range files {
		text, err := c.store.Read(rel)
		if err != nil {
			return nil, fmt.Errorf("checker: %w", err)
		}
		missing, legacy := c.checkDocument(rel, text)
		report.MissingLinks = append(report.MissingLinks, missing...)
		report.LegacyRefs = append(report.LegacyRefs, legacy...)
		c.logger.Debug("checker: scanned",
			slog.String("path", rel),
			slog.Int("missing_links", len(missing)),
			slog.Int("legacy_refs", len(legacy)))
	}

	c.logger.Info("checker: scan complete",
		slog.Int("files", len(files)),
		slog.Int("missing_links", len(report.MissingLinks)),
		slog.Int("legacy_refs", len(report.LegacyRefs)))
	return report, nil
}

// checkDocument walks the non-fenced lines of one document.
func (c *Checker) checkDocument(rel, text string) ([]models.MissingLink, []models.LegacyReference) {
	var missing []models.MissingLink
	var legacy []models.LegacyReference

	for _, line := range parser.Lines(text) {
		for _, raw := range parser.LinkTargets(line.Text) {
			target, ok := parser.NormalizeTarget(raw)
			if !ok {
				continue
			}
			if c.store.Exists(c.store.Resolve(rel, target)) {
				continue
			}
			missing = append(missing, models.MissingLink{Path: rel, Line: line.Number, Target: raw})
		}

		// Overlapping keys (with and without a leading slash) are each reported.
		for _, lp := range c.legacy {
			if strings.Contains(line.Text, lp.Legacy) {
				legacy = append(legacy, models.LegacyReference{
					Path:        rel,
					Line:        line.Number,
					Legacy:      lp.Legacy,
					Replacement: lp.Replacement,
				})
			}
		}
	}
	return missing, legacy
}

// Package cases persists resolution cases as JSON documents, one file
// per case id. The directory is the system of record for drafted cases
// until the approval workflow picks them up.
package cases

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"vdms/internal/models"

	"github.com/rs/zerolog"
)

// ErrCaseNotFound is returned when no case file exists for the given id
var ErrCaseNotFound = errors.New("case not found")

// ErrCaseExists guards the append-only contract: a case id is written once
var ErrCaseExists = errors.New("case already exists")

// Repository stores one JSON file per case under a flat directory
type Repository struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewRepository creates the case directory when missing
func NewRepository(dir string, logger zerolog.Logger) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create case directory %s: %w", dir, err)
	}
	return &Repository{dir: dir, logger: logger}, nil
}

func (r *Repository) path(caseID string) string {
	return filepath.Join(r.dir, caseID+".json")
}

// Save writes a new case document. Case ids are unique per analysis run,
// so an existing file means a duplicate write, not an update.
func (r *Repository) Save(rc *models.ResolutionCase) error {
	caseID := rc.Analysis.CaseID
	if caseID == "" {
		return fmt.Errorf("case has no case id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(caseID)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrCaseExists, caseID)
	}

	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal case %s: %w", caseID, err)
	}

	// Write-then-rename so a crashed write never leaves a half case behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write case %s: %w", caseID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize case %s: %w", caseID, err)
	}

	r.logger.Info().Str("case_id", caseID).Str("path", path).Msg("Case persisted")
	return nil
}

// Get loads one case by case id
func (r *Repository) Get(caseID string) (*models.ResolutionCase, error) {
	data, err := os.ReadFile(r.path(caseID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read case %s: %w", caseID, err)
	}

	var rc models.ResolutionCase
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse case %s: %w", caseID, err)
	}
	return &rc, nil
}

// List loads every case in the directory, newest dispute first.
// Unparseable files are skipped with a warning rather than failing the
// whole listing.
func (r *Repository) List() ([]*models.ResolutionCase, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read case directory %s: %w", r.dir, err)
	}

	result := make([]*models.ResolutionCase, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		rc, err := r.Get(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			r.logger.Warn().Str("file", entry.Name()).Err(err).Msg("Skipping unreadable case file")
			continue
		}
		result = append(result, rc)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Dispute.CreatedAt.After(result[j].Dispute.CreatedAt)
	})

	return result, nil
}

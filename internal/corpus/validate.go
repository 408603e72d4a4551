package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// IssueLevel classifies a validation finding
type IssueLevel string

const (
	LevelWarning IssueLevel = "warning"
	LevelError   IssueLevel = "error"
)

// Issue is one validation finding for a template
type Issue struct {
	ID      string
	Level   IssueLevel
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Level, i.ID, i.Message)
}

// Validate checks every template in the corpus and reports findings.
// Structural failures (unparseable or invalid metadata) are errors; missing
// documentation, unresolvable cross-references and declared-but-absent code
// files are warnings. The corpus itself is never modified.
func (s *Store) Validate() ([]Issue, error) {
	ids, err := s.ListIDs()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	var issues []Issue
	for _, id := range ids {
		rec, err := s.LoadRecord(id)
		if errors.Is(err, ErrInvalidRecord) {
			issues = append(issues, Issue{ID: id, Level: LevelError, Message: err.Error()})
			continue
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		parsed, _ := ParseID(id)
		dir := parsed.Path(s.root)

		for _, ref := range rec.RelatedTemplates {
			if !known[ref] {
				issues = append(issues, Issue{
					ID:      id,
					Level:   LevelWarning,
					Message: fmt.Sprintf("relatedTemplates entry %q does not resolve", ref),
				})
			}
		}

		filesDir := filepath.Join(dir, CodeDir)
		hasFilesDir := dirExists(filesDir)
		hasCodeFile := fileExists(filepath.Join(dir, CodeFile))

		if !hasFilesDir && !hasCodeFile {
			issues = append(issues, Issue{
				ID:      id,
				Level:   LevelWarning,
				Message: "no code body: neither " + CodeDir + "/ nor " + CodeFile + " present",
			})
		}

		if hasFilesDir {
			for _, f := range rec.Files {
				if !fileExists(filepath.Join(filesDir, filepath.FromSlash(f.Path))) {
					level := LevelWarning
					if f.IsRequired {
						level = LevelError
					}
					issues = append(issues, Issue{
						ID:      id,
						Level:   level,
						Message: fmt.Sprintf("declared file %q not found under %s/", f.Path, CodeDir),
					})
				}
			}
		}

		if !fileExists(filepath.Join(dir, DocFile)) {
			issues = append(issues, Issue{
				ID:      id,
				Level:   LevelWarning,
				Message: "missing " + DocFile,
			})
		}
	}

	return issues, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/cube/internal/domain"
)

// FS stores one JSON file per attempt under dir/<status>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var statusDirs = []domain.Status{domain.StatusSolved, domain.StatusRejected, domain.StatusFailed}

func statusDir(s domain.Status) string {
	switch s {
	case domain.StatusSolved:
		return "solved"
	case domain.StatusRejected:
		return "rejected"
	default:
		return "failed"
	}
}

func (s *FS) pathFor(id string, st domain.Status) string {
	return filepath.Join(s.dir, statusDir(st), strings.TrimSpace(id)+".json")
}

func (s *FS) Record(ctx context.Context, a *domain.Attempt) error {
	if a == nil || a.ID == "" {
		return domain.WrapCubeError(domain.ErrStore, "invalid attempt: missing ID", nil)
	}
	target := s.pathFor(a.ID, a.Status)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return domain.WrapCubeError(domain.ErrStore, "create attempt dir", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return domain.WrapCubeError(domain.ErrStore, "create attempt file", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return domain.WrapCubeError(domain.ErrStore, "write attempt", err)
	}
	return nil
}

func (s *FS) Get(ctx context.Context, id string) (*domain.Attempt, error) {
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, domain.ErrNotFound
	}
	for _, st := range statusDirs {
		data, err := os.ReadFile(s.pathFor(id, st))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, domain.WrapCubeError(domain.ErrStore, "read attempt", err)
		}
		var out domain.Attempt
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, domain.WrapCubeError(domain.ErrStore, "decode attempt", err)
		}
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

// List returns the newest attempts first. limit <= 0 means no limit.
func (s *FS) List(ctx context.Context, limit int) ([]domain.Attempt, error) {
	var out []domain.Attempt
	for _, st := range statusDirs {
		dir := filepath.Join(s.dir, statusDir(st))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, domain.WrapCubeError(domain.ErrStore, "list attempts", err)
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var a domain.Attempt
			if err := json.Unmarshal(data, &a); err != nil || a.ID == "" {
				continue
			}
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

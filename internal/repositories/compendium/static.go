package compendium

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

// packFile is the YAML layout of one pack file
type packFile struct {
	Pack  string           `yaml:"pack"`
	Items []*entities.Item `yaml:"items"`
}

// StaticLibrary serves packs held in memory
type StaticLibrary struct {
	mu    sync.RWMutex
	packs map[string][]*entities.Item
}

// NewStaticLibrary builds a library from already decoded packs
func NewStaticLibrary(packs map[string][]*entities.Item) (*StaticLibrary, error) {
	lib := &StaticLibrary{packs: make(map[string][]*entities.Item, len(packs))}
	for id, items := range packs {
		if err := lib.Add(id, items); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadFS reads every *.yaml file under dir in fsys as a pack. The pack id
// comes from the file's "pack" field, or the file name without extension.
func LoadFS(fsys fs.FS, dir string) (*StaticLibrary, error) {
	lib := &StaticLibrary{packs: make(map[string][]*entities.Item)}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (path.Ext(p) != ".yaml" && path.Ext(p) != ".yml") {
			return nil
		}

		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read pack %s: %w", p, err)
		}

		var file packFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("decode pack %s: %w", p, err)
		}
		if file.Pack == "" {
			file.Pack = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}

		if err := lib.Add(file.Pack, file.Items); err != nil {
			return fmt.Errorf("load pack %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to load compendium").WithMeta("dir", dir)
	}

	return lib, nil
}

// Add validates items and appends them to pack id
func (l *StaticLibrary) Add(id string, items []*entities.Item) error {
	if id == "" {
		return pwerr.InvalidArgument("pack id is required")
	}

	prepared := make([]*entities.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		clone := item.Clone()
		clone.Normalize()
		if err := clone.Validate(); err != nil {
			return pwerr.Validationf("invalid item in pack %s: %v", id, err).WithMeta("pack", id)
		}
		prepared = append(prepared, clone)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range prepared {
		if item.ID == "" {
			item.ID = fmt.Sprintf("%s.%d", id, len(l.packs[id])+1)
		}
		l.packs[id] = append(l.packs[id], item)
	}
	if _, ok := l.packs[id]; !ok {
		l.packs[id] = []*entities.Item{}
	}

	return nil
}

// Pack returns the items of pack id ordered by name
func (l *StaticLibrary) Pack(ctx context.Context, id string) ([]*entities.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items, ok := l.packs[id]
	if !ok {
		return nil, pwerr.NotFoundf("pack '%s' not found", id).WithMeta("pack", id)
	}

	out := entities.CloneItems(items)
	sortByName(out)
	return out, nil
}

// Packs lists pack ids
func (l *StaticLibrary) Packs(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.packs))
	for id := range l.packs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func sortByName(items []*entities.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
}

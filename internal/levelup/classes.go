package levelup

import (
	"context"
	"sort"
	"strings"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/compendium"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// ClassList merges the world's class items with the classes compendium.
// World classes win when both define the same name.
type ClassList struct {
	rules   *ruleset.Ruleset
	world   compendium.WorldItems
	library compendium.Library
}

// NewClassList creates a class list. world and library may be nil.
func NewClassList(rules *ruleset.Ruleset, world compendium.WorldItems, library compendium.Library) *ClassList {
	return &ClassList{rules: rules, world: world, library: library}
}

// Classes returns the class items sorted case-insensitively by name
func (c *ClassList) Classes(ctx context.Context) ([]*entities.Item, error) {
	var classes []*entities.Item

	if c.world != nil {
		items, err := c.world.List(ctx, entities.ItemTypeClass)
		if err != nil {
			return nil, pwerr.Wrap(err, "failed to list world classes")
		}
		classes = append(classes, items...)
	}

	if c.library != nil {
		items, err := c.library.Pack(ctx, c.rules.ClassesPackID())
		if err != nil && !pwerr.IsNotFound(err) {
			return nil, pwerr.Wrap(err, "failed to load class compendium")
		}
		for _, item := range items {
			if item.Type == entities.ItemTypeClass {
				classes = append(classes, item)
			}
		}
	}

	seen := make(map[string]bool, len(classes))
	unique := classes[:0]
	for _, class := range classes {
		if seen[class.Name] {
			continue
		}
		seen[class.Name] = true
		unique = append(unique, class)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return strings.ToLower(unique[i].Name) < strings.ToLower(unique[j].Name)
	})
	return unique, nil
}

// Names returns the sorted class names
func (c *ClassList) Names(ctx context.Context) ([]string, error) {
	classes, err := c.Classes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.Name
	}
	return names, nil
}

// Has reports whether name is a known class
func (c *ClassList) Has(ctx context.Context, name string) (bool, error) {
	classes, err := c.Classes(ctx)
	if err != nil {
		return false, err
	}
	_, ok := findClass(classes, name)
	return ok, nil
}

func findClass(classes []*entities.Item, name string) (*entities.Item, bool) {
	for _, class := range classes {
		if class.Name == name {
			return class, true
		}
	}
	return nil, false
}

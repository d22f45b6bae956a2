package entities

import (
	"fmt"
	"sort"
)

// ItemType is the closed set of item variants
type ItemType string

const (
	ItemTypeMove      ItemType = "move"
	ItemTypeEquipment ItemType = "equipment"
	ItemTypeBond      ItemType = "bond"
	ItemTypeJob       ItemType = "job"
	ItemTypeDuty      ItemType = "duty"
	ItemTypeClub      ItemType = "club"
	ItemTypeClass     ItemType = "class"
	ItemTypeTag       ItemType = "tag"
)

// ItemTypes lists every valid item type
func ItemTypes() []ItemType {
	return []ItemType{
		ItemTypeMove, ItemTypeEquipment, ItemTypeBond, ItemTypeJob,
		ItemTypeDuty, ItemTypeClub, ItemTypeClass, ItemTypeTag,
	}
}

// ParseItemType validates s as an item type
func ParseItemType(s string) (ItemType, error) {
	for _, t := range ItemTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// MoveType classifies a move
type MoveType string

const (
	MoveTypeNone     MoveType = ""
	MoveTypeBasic    MoveType = "basic"
	MoveTypeStarting MoveType = "starting"
	MoveTypeAdvanced MoveType = "advanced"
	MoveTypeSpecial  MoveType = "special"
)

// Valid reports whether the move type is known
func (t MoveType) Valid() bool {
	switch t {
	case MoveTypeNone, MoveTypeBasic, MoveTypeStarting, MoveTypeAdvanced, MoveTypeSpecial:
		return true
	}
	return false
}

// MoveData is the payload of a move item
type MoveData struct {
	MoveType      MoveType `json:"move_type,omitempty" yaml:"move_type"`
	RequiresLevel int      `json:"requires_level" yaml:"requires_level"`
	RequiresMove  string   `json:"requires_move,omitempty" yaml:"requires_move"`
	MoveGroup     string   `json:"move_group,omitempty" yaml:"move_group"`
	Class         string   `json:"class,omitempty" yaml:"class"`
	Roll          string   `json:"roll,omitempty" yaml:"roll"` // ability key, formula, BOND or ASKMOD
	RollMod       int      `json:"roll_mod,omitempty" yaml:"roll_mod"`
	Uses          int      `json:"uses,omitempty" yaml:"uses"`
}

// EquipmentData is the payload of an equipment item
type EquipmentData struct {
	Quantity int      `json:"quantity" yaml:"quantity"`
	Weight   int      `json:"weight" yaml:"weight"`
	Uses     int      `json:"uses,omitempty" yaml:"uses"`
	Tags     []string `json:"tags,omitempty" yaml:"tags"`
}

// DriveOption is one drive a class offers
type DriveOption struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// EquipmentGroup is a named choice of starting equipment
type EquipmentGroup struct {
	Label   string   `json:"label,omitempty" yaml:"label"`
	Items   []string `json:"items" yaml:"items"`
	Objects []*Item  `json:"objects,omitempty" yaml:"-"`
}

// ClassData is the payload of a class item
type ClassData struct {
	Load      int                        `json:"load,omitempty" yaml:"load"`
	Drives    map[string]DriveOption     `json:"drives,omitempty" yaml:"drives"`
	Equipment map[string]*EquipmentGroup `json:"equipment,omitempty" yaml:"equipment"`
}

// EquipmentGroupKeys returns the group keys in sorted order
func (c *ClassData) EquipmentGroupKeys() []string {
	keys := make([]string, 0, len(c.Equipment))
	for k := range c.Equipment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DriveKeys returns the drive keys in sorted order
func (c *ClassData) DriveKeys() []string {
	keys := make([]string, 0, len(c.Drives))
	for k := range c.Drives {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Item is an owned or library item. Exactly one payload matches Type for
// move, equipment and class items; the other variants carry none.
type Item struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        ItemType `json:"type" yaml:"type"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Img         string   `json:"img,omitempty" yaml:"img"`

	Move      *MoveData      `json:"move,omitempty" yaml:"move"`
	Equipment *EquipmentData `json:"equipment,omitempty" yaml:"equipment"`
	Class     *ClassData     `json:"class,omitempty" yaml:"class"`
}

// Normalize fills in defaults: move payloads get requires_level 1, empty
// equipment groups get empty lists
func (i *Item) Normalize() {
	switch i.Type {
	case ItemTypeMove:
		if i.Move == nil {
			i.Move = &MoveData{}
		}
		if i.Move.RequiresLevel < 1 {
			i.Move.RequiresLevel = 1
		}
	case ItemTypeEquipment:
		if i.Equipment == nil {
			i.Equipment = &EquipmentData{}
		}
	case ItemTypeClass:
		if i.Class == nil {
			i.Class = &ClassData{}
		}
		for _, group := range i.Class.Equipment {
			if group == nil {
				continue
			}
			if len(group.Items) == 0 {
				group.Items = []string{}
				group.Objects = []*Item{}
			}
		}
	case ItemTypeBond, ItemTypeJob, ItemTypeDuty, ItemTypeClub, ItemTypeTag:
	}
}

// Validate checks the item against its variant
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required")
	}

	var payloads int
	if i.Move != nil {
		payloads++
	}
	if i.Equipment != nil {
		payloads++
	}
	if i.Class != nil {
		payloads++
	}

	switch i.Type {
	case ItemTypeMove:
		if i.Move == nil || payloads != 1 {
			return fmt.Errorf("move %q must carry only a move payload", i.Name)
		}
		if !i.Move.MoveType.Valid() {
			return fmt.Errorf("move %q has unknown move type %q", i.Name, i.Move.MoveType)
		}
		if i.Move.RequiresLevel < 1 {
			return fmt.Errorf("move %q requires level %d", i.Name, i.Move.RequiresLevel)
		}
	case ItemTypeEquipment:
		if i.Equipment == nil || payloads != 1 {
			return fmt.Errorf("equipment %q must carry only an equipment payload", i.Name)
		}
	case ItemTypeClass:
		if i.Class == nil || payloads != 1 {
			return fmt.Errorf("class %q must carry only a class payload", i.Name)
		}
	case ItemTypeBond, ItemTypeJob, ItemTypeDuty, ItemTypeClub, ItemTypeTag:
		if payloads != 0 {
			return fmt.Errorf("%s %q cannot carry a payload", i.Type, i.Name)
		}
	default:
		return fmt.Errorf("unknown item type %q", i.Type)
	}

	return nil
}

// RequiresLevel is the move's level requirement, 1 for anything else
func (i *Item) RequiresLevel() int {
	if i.Move == nil || i.Move.RequiresLevel < 1 {
		return 1
	}
	return i.Move.RequiresLevel
}

// Clone returns a deep copy
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}

	clone := *i
	if i.Move != nil {
		move := *i.Move
		clone.Move = &move
	}
	if i.Equipment != nil {
		eq := *i.Equipment
		eq.Tags = append([]string(nil), i.Equipment.Tags...)
		clone.Equipment = &eq
	}
	if i.Class != nil {
		class := ClassData{Load: i.Class.Load}
		if i.Class.Drives != nil {
			class.Drives = make(map[string]DriveOption, len(i.Class.Drives))
			for k, v := range i.Class.Drives {
				class.Drives[k] = v
			}
		}
		if i.Class.Equipment != nil {
			class.Equipment = make(map[string]*EquipmentGroup, len(i.Class.Equipment))
			for k, g := range i.Class.Equipment {
				if g == nil {
					class.Equipment[k] = nil
					continue
				}
				group := &EquipmentGroup{
					Label: g.Label,
					Items: append([]string(nil), g.Items...),
				}
				if g.Objects != nil {
					group.Objects = make([]*Item, len(g.Objects))
					for j, obj := range g.Objects {
						group.Objects[j] = obj.Clone()
					}
				}
				class.Equipment[k] = group
			}
		}
		clone.Class = &class
	}
	return &clone
}

// CloneItems deep copies a slice of items
func CloneItems(items []*Item) []*Item {
	if items == nil {
		return nil
	}
	out := make([]*Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// ItemPatch is a partial update of an owned item
type ItemPatch struct {
	Name     *string   `json:"name,omitempty"`
	Uses     *int      `json:"uses,omitempty"`
	Quantity *int      `json:"quantity,omitempty"`
	MoveType *MoveType `json:"move_type,omitempty"`
}

// Apply writes the patch onto item
func (p ItemPatch) Apply(item *Item) error {
	if p.Name != nil {
		item.Name = *p.Name
	}

	if p.Uses != nil {
		switch {
		case item.Move != nil:
			item.Move.Uses = *p.Uses
		case item.Equipment != nil:
			item.Equipment.Uses = *p.Uses
		default:
			return fmt.Errorf("%s %q has no uses", item.Type, item.Name)
		}
	}

	if p.Quantity != nil {
		if item.Equipment == nil {
			return fmt.Errorf("%s %q has no quantity", item.Type, item.Name)
		}
		item.Equipment.Quantity = *p.Quantity
	}

	if p.MoveType != nil {
		if item.Move == nil {
			return fmt.Errorf("%s %q is not a move", item.Type, item.Name)
		}
		if !p.MoveType.Valid() {
			return fmt.Errorf("unknown move type %q", *p.MoveType)
		}
		item.Move.MoveType = *p.MoveType
	}

	return nil
}

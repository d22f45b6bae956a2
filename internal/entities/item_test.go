package entities_test

import (
	"testing"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemType(t *testing.T) {
	for _, it := range entities.ItemTypes() {
		got, err := entities.ParseItemType(string(it))
		require.NoError(t, err)
		assert.Equal(t, it, got)
	}

	_, err := entities.ParseItemType("spell")
	assert.Error(t, err)
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    entities.Item
		wantErr bool
	}{
		{
			name: "move",
			item: entities.Item{Name: "Attack", Type: entities.ItemTypeMove, Move: &entities.MoveData{MoveType: entities.MoveTypeBasic, RequiresLevel: 1}},
		},
		{
			name:    "move without payload",
			item:    entities.Item{Name: "Attack", Type: entities.ItemTypeMove},
			wantErr: true,
		},
		{
			name:    "move with unknown move type",
			item:    entities.Item{Name: "Attack", Type: entities.ItemTypeMove, Move: &entities.MoveData{MoveType: "epic", RequiresLevel: 1}},
			wantErr: true,
		},
		{
			name:    "move with extra payload",
			item:    entities.Item{Name: "Attack", Type: entities.ItemTypeMove, Move: &entities.MoveData{RequiresLevel: 1}, Equipment: &entities.EquipmentData{}},
			wantErr: true,
		},
		{
			name: "bond",
			item: entities.Item{Name: "I owe Kai my life", Type: entities.ItemTypeBond},
		},
		{
			name:    "bond with payload",
			item:    entities.Item{Name: "I owe Kai my life", Type: entities.ItemTypeBond, Class: &entities.ClassData{}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			item:    entities.Item{Name: "Fireball", Type: "spell"},
			wantErr: true,
		},
		{
			name:    "missing name",
			item:    entities.Item{Type: entities.ItemTypeTag},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestItem_Normalize(t *testing.T) {
	move := &entities.Item{Name: "Attack", Type: entities.ItemTypeMove, Move: &entities.MoveData{}}
	move.Normalize()
	assert.Equal(t, 1, move.Move.RequiresLevel)

	class := &entities.Item{
		Name: "Operative",
		Type: entities.ItemTypeClass,
		Class: &entities.ClassData{Equipment: map[string]*entities.EquipmentGroup{
			"weapons": {Label: "Weapons"},
			"broken":  nil,
		}},
	}
	class.Normalize()
	assert.Equal(t, []string{}, class.Class.Equipment["weapons"].Items)
	assert.Equal(t, []*entities.Item{}, class.Class.Equipment["weapons"].Objects)
	assert.Equal(t, []string{"broken", "weapons"}, class.Class.EquipmentGroupKeys())
}

func TestItem_CloneIsDeep(t *testing.T) {
	class := &entities.Item{
		Name: "Operative",
		Type: entities.ItemTypeClass,
		Class: &entities.ClassData{
			Load:   10,
			Drives: map[string]entities.DriveOption{"duty": {Label: "Duty"}},
			Equipment: map[string]*entities.EquipmentGroup{
				"weapons": {Items: []string{"a"}, Objects: []*entities.Item{{ID: "a", Name: "Sidearm"}}},
			},
		},
	}

	clone := class.Clone()
	clone.Class.Drives["duty"] = entities.DriveOption{Label: "Changed"}
	clone.Class.Equipment["weapons"].Items[0] = "b"
	clone.Class.Equipment["weapons"].Objects[0].Name = "Rifle"

	assert.Equal(t, "Duty", class.Class.Drives["duty"].Label)
	assert.Equal(t, "a", class.Class.Equipment["weapons"].Items[0])
	assert.Equal(t, "Sidearm", class.Class.Equipment["weapons"].Objects[0].Name)
}

func TestItemPatch_Apply(t *testing.T) {
	uses, qty := 2, 5
	eq := &entities.Item{Name: "Flare", Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{Quantity: 1}}

	require.NoError(t, entities.ItemPatch{Uses: &uses, Quantity: &qty}.Apply(eq))
	assert.Equal(t, 2, eq.Equipment.Uses)
	assert.Equal(t, 5, eq.Equipment.Quantity)

	bond := &entities.Item{Name: "bond", Type: entities.ItemTypeBond}
	assert.Error(t, entities.ItemPatch{Quantity: &qty}.Apply(bond))

	basic := entities.MoveTypeBasic
	move := &entities.Item{Name: "Attack", Type: entities.ItemTypeMove, Move: &entities.MoveData{}}
	require.NoError(t, entities.ItemPatch{MoveType: &basic}.Apply(move))
	assert.Equal(t, entities.MoveTypeBasic, move.Move.MoveType)
}

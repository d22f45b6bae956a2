package actors_test

import (
	"context"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/repositories/actors"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
	"github.com/stretchr/testify/suite"
)

// RepositoryContractSuite runs the same behaviour checks against every
// Repository implementation
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() actors.Repository
	repo    actors.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func testActor(id string) *entities.Actor {
	return &entities.Actor{
		ID:      id,
		OwnerID: "user-1",
		Name:    "Mira " + id,
		Type:    entities.ActorTypeCharacter,
		Abilities: map[ruleset.Ability]entities.AbilityScore{
			ruleset.AbilityVio: {Value: 12},
		},
		Attributes: entities.Attributes{
			Level: entities.Tracker{Value: 1},
			XP:    entities.Tracker{Value: 12},
		},
		Details: entities.Details{Class: "Operative"},
		Flags:   entities.Flags{Levelup: true},
	}
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	actor := testActor("a1")
	s.Require().NoError(s.repo.Create(s.ctx, actor))

	got, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(actor.Name, got.Name)
	s.Equal(12, got.Ability(ruleset.AbilityVio).Value)

	// Returned values are copies
	got.Name = "changed"
	again, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(actor.Name, again.Name)
}

func (s *RepositoryContractSuite) TestCreate_Duplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	err := s.repo.Create(s.ctx, testActor("a1"))
	s.True(pwerr.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestCreate_Invalid() {
	s.True(pwerr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(pwerr.IsInvalidArgument(s.repo.Create(s.ctx, &entities.Actor{Name: "x", Type: entities.ActorTypeNPC})))

	bad := testActor("a2")
	bad.Type = "monster"
	s.True(pwerr.IsValidation(s.repo.Create(s.ctx, bad)))
}

func (s *RepositoryContractSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(pwerr.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestList() {
	npc := testActor("n1")
	npc.Type = entities.ActorTypeNPC
	npc.OwnerID = "gm"
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a2")))
	s.Require().NoError(s.repo.Create(s.ctx, npc))

	all, err := s.repo.List(s.ctx, actors.ListOptions{})
	s.Require().NoError(err)
	s.Len(all, 3)

	characters, err := s.repo.List(s.ctx, actors.ListOptions{Type: entities.ActorTypeCharacter})
	s.Require().NoError(err)
	s.Require().Len(characters, 2)
	s.Equal("a1", characters[0].ID)

	owned, err := s.repo.List(s.ctx, actors.ListOptions{OwnerID: "gm"})
	s.Require().NoError(err)
	s.Require().Len(owned, 1)
	s.Equal("n1", owned[0].ID)
}

func (s *RepositoryContractSuite) TestUpdate() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	level := 2
	harm := entities.HarmWounded
	updated, err := s.repo.Update(s.ctx, "a1", entities.ActorPatch{Level: &level, Harm: &harm})
	s.Require().NoError(err)
	s.Equal(2, updated.Attributes.Level.Value)

	got, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(entities.HarmWounded, got.Attributes.Harm.Value)

	bad := entities.HarmLevel("bruised")
	_, err = s.repo.Update(s.ctx, "a1", entities.ActorPatch{Harm: &bad})
	s.True(pwerr.IsValidation(err))

	_, err = s.repo.Update(s.ctx, "missing", entities.ActorPatch{Level: &level})
	s.True(pwerr.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestItems() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	created, err := s.repo.CreateItems(s.ctx, "a1", []*entities.Item{
		{Name: "Flare", Type: entities.ItemTypeEquipment, Equipment: &entities.EquipmentData{Quantity: 2, Weight: 1}},
		{ID: "move-1", Name: "Quickdraw", Type: entities.ItemTypeMove, Move: &entities.MoveData{}},
	})
	s.Require().NoError(err)
	s.Require().Len(created, 2)
	s.NotEmpty(created[0].ID)
	s.Equal("move-1", created[1].ID)
	s.Equal(1, created[1].Move.RequiresLevel, "normalised")

	qty := 3
	item, err := s.repo.UpdateItem(s.ctx, "a1", created[0].ID, entities.ItemPatch{Quantity: &qty})
	s.Require().NoError(err)
	s.Equal(3, item.Equipment.Quantity)

	_, err = s.repo.UpdateItem(s.ctx, "a1", "move-1", entities.ItemPatch{Quantity: &qty})
	s.True(pwerr.IsValidation(err))

	s.Require().NoError(s.repo.DeleteItem(s.ctx, "a1", "move-1"))
	s.True(pwerr.IsNotFound(s.repo.DeleteItem(s.ctx, "a1", "move-1")))

	got, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Require().Len(got.Items, 1)
	s.Equal(3, got.Items[0].Equipment.Quantity)
}

func (s *RepositoryContractSuite) TestCommit_AppliesEverything() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	xp, level, weight := 0, 2, 11
	levelup := false
	changes := &actors.Changeset{
		Patch: entities.ActorPatch{XP: &xp, Level: &level, WeightMax: &weight, Levelup: &levelup},
		Items: []*entities.Item{
			{Name: "I trust Kai", Type: entities.ItemTypeBond},
			{Name: "Quickdraw", Type: entities.ItemTypeMove, Move: &entities.MoveData{RequiresLevel: 1}},
		},
	}
	changes.Patch.SetAbilityValue(ruleset.AbilityVio, 13)

	committed, err := s.repo.Commit(s.ctx, "a1", changes)
	s.Require().NoError(err)
	s.Equal(2, committed.Attributes.Level.Value)

	got, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(0, got.Attributes.XP.Value)
	s.Equal(11, got.Attributes.Weight.Max)
	s.Equal(13, got.Ability(ruleset.AbilityVio).Value)
	s.False(got.Flags.Levelup)
	s.Len(got.Items, 2)
}

func (s *RepositoryContractSuite) TestCommit_IsAllOrNothing() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	level := 5
	changes := &actors.Changeset{
		Patch: entities.ActorPatch{Level: &level},
		Items: []*entities.Item{
			{Name: "Quickdraw", Type: entities.ItemTypeMove, Move: &entities.MoveData{}},
			{Name: "Broken", Type: "spell"},
		},
	}

	_, err := s.repo.Commit(s.ctx, "a1", changes)
	s.True(pwerr.IsValidation(err))

	got, err := s.repo.Get(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(1, got.Attributes.Level.Value)
	s.Empty(got.Items)
}

func (s *RepositoryContractSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, testActor("a1")))

	s.Require().NoError(s.repo.Delete(s.ctx, "a1"))

	_, err := s.repo.Get(s.ctx, "a1")
	s.True(pwerr.IsNotFound(err))
	s.True(pwerr.IsNotFound(s.repo.Delete(s.ctx, "a1")))

	all, err := s.repo.List(s.ctx, actors.ListOptions{})
	s.Require().NoError(err)
	s.Empty(all)
}

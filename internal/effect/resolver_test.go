package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testCatalog() *Catalog {
	return NewCatalog([]*Definition{
		{
			FormID:            0x12EB7,
			EditorID:          "FireDamageFFAimed",
			Hostile:           true,
			Archetype:         ArchetypeValueModifier,
			ResistVariable:    ActorValueFireResist,
			CastingType:       CastingFireAndForget,
			MinimumSkillLevel: 25,
			ProjectileType:    ptr(int32(2)),
			Keywords:          []string{"MagicDamageFire"},
		},
		{
			FormID:            0x10F7EE,
			EditorID:          "AbAbsorbHealth",
			Hostile:           true,
			HideInUI:          true,
			Archetype:         ArchetypeAbsorb,
			MinimumSkillLevel: 50,
		},
		{
			FormID:   0x3AC2D,
			EditorID: "CourageBuff",
			Keywords: []string{"magicdamagefrost", "FEC_MagicNoEffect"},
		},
	})
}

func TestResolver_Records(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultKeywords())

	snap := Snapshot{
		{FormID: 0x10F7EE, Magnitude: -4},
		{FormID: 0xDEAD, Magnitude: -99},
		{FormID: 0x12EB7, Magnitude: -12.5},
		{FormID: 0x3AC2D, Magnitude: 10},
	}

	recs := r.Records(snap)
	require.Len(t, recs, 3)

	absorb := recs[0]
	assert.Equal(t, uint32(0x10F7EE), absorb.BaseEffect)
	assert.Equal(t, ArchetypeAbsorb, absorb.Archetype)
	assert.True(t, absorb.HiddenFromUI)
	assert.False(t, absorb.HasProjectile)
	assert.Equal(t, int32(-1), absorb.Projectile())

	fire := recs[1]
	assert.True(t, fire.Hostile)
	assert.True(t, fire.Fire)
	assert.False(t, fire.Frost)
	assert.Equal(t, float32(12.5), fire.Severity())
	assert.Equal(t, int32(2), fire.Projectile())
	assert.Equal(t, int32(25), fire.MinimumSkillLevel)

	buff := recs[2]
	assert.False(t, buff.Hostile)
	assert.True(t, buff.Frost, "keyword match is case-insensitive")
	assert.True(t, buff.NoDeathEffect)
}

func TestResolver_Killer(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultKeywords())

	assert.Nil(t, r.Killer(false, []string{"ActorTypeGhost"}))
	assert.Equal(t, &Killer{Ghost: true}, r.Killer(true, []string{"ActorTypeNPC", "ActorTypeGhost"}))
	assert.Equal(t, &Killer{}, r.Killer(true, nil))
}

func TestResolver_ActiveEffects(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultKeywords())

	snap := Snapshot{
		{FormID: 0x12EB7},
		{FormID: 0x10F7EE},
		{FormID: 0x3AC2D, Inactive: true},
		{FormID: 0x3AC2D, Dispelled: true},
		{FormID: 0xDEAD},
	}

	assert.Equal(t, []uint32{0x12EB7}, r.ActiveEffects(snap, false))
	assert.Equal(t, []uint32{0x12EB7, 0x10F7EE, 0x3AC2D, 0x3AC2D}, r.ActiveEffects(snap, true))
	assert.Empty(t, r.ActiveEffects(nil, true))
}

func TestResolver_HasArchetype(t *testing.T) {
	r := NewResolver(testCatalog(), DefaultKeywords())
	snap := Snapshot{{FormID: 0x12EB7}, {FormID: 0x10F7EE}}

	assert.True(t, r.HasArchetype(snap, "absorb"))
	assert.True(t, r.HasArchetype(snap, "ValueModifier"))
	assert.False(t, r.HasArchetype(snap, "Demoralize"))
	assert.False(t, r.HasArchetype(snap, "NotAnArchetype"))
	assert.False(t, r.HasArchetype(snap, ""))
	assert.False(t, r.HasArchetype(nil, "Absorb"))
}

func TestParseActorValue(t *testing.T) {
	v, err := ParseActorValue("poisonresist")
	require.NoError(t, err)
	assert.Equal(t, ActorValuePoisonResist, v)

	v, err = ParseActorValue("")
	require.NoError(t, err)
	assert.Equal(t, ActorValueNone, v)

	v, err = ParseActorValue("other")
	require.NoError(t, err)
	assert.Equal(t, ActorValueOther, v)

	_, err = ParseActorValue("Lockpicking")
	assert.ErrorContains(t, err, `unknown resist variable "Lockpicking"`)
}

func TestParseCastingType(t *testing.T) {
	c, err := ParseCastingType("concentration")
	require.NoError(t, err)
	assert.Equal(t, CastingConcentration, c)

	_, err = ParseCastingType("sideways")
	assert.Error(t, err)
}

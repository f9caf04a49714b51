package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deathfx/internal/effect"
	"github.com/udisondev/deathfx/internal/testutil"
)

func TestDefinitionRepository_SaveAndLoad(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDefinitionRepository(pool)
	ctx := context.Background()

	want := testutil.Definitions()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	catalog := effect.NewCatalog(got)
	for _, w := range want {
		g := catalog.Definition(w.FormID)
		require.NotNil(t, g, "form %08X", w.FormID)
		assert.Equal(t, w.EditorID, g.EditorID)
		assert.Equal(t, w.Hostile, g.Hostile)
		assert.Equal(t, w.HideInUI, g.HideInUI)
		assert.Equal(t, w.Archetype, g.Archetype)
		assert.Equal(t, w.ResistVariable, g.ResistVariable)
		assert.Equal(t, w.CastingType, g.CastingType)
		assert.Equal(t, w.MinimumSkillLevel, g.MinimumSkillLevel)
		assert.Equal(t, w.ProjectileType, g.ProjectileType)
		assert.ElementsMatch(t, w.Keywords, g.Keywords)
	}
}

func TestDefinitionRepository_UpsertReplacesKeywords(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDefinitionRepository(pool)
	ctx := context.Background()

	def := testutil.Definitions()[0]
	require.NoError(t, repo.Save(ctx, []*effect.Definition{def}))

	def.Keywords = []string{"MagicDamageFrost"}
	def.MinimumSkillLevel = 100
	def.ProjectileType = nil
	require.NoError(t, repo.Save(ctx, []*effect.Definition{def}))

	got, err := repo.Get(ctx, def.FormID)
	require.NoError(t, err)
	assert.Equal(t, []string{"MagicDamageFrost"}, got.Keywords)
	assert.Equal(t, int32(100), got.MinimumSkillLevel)
	assert.Nil(t, got.ProjectileType)
}

func TestDefinitionRepository_GetAndDelete(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDefinitionRepository(pool)
	ctx := context.Background()

	_, err := repo.Get(ctx, testutil.FormFireBolt)
	assert.ErrorIs(t, err, ErrDefinitionNotFound)

	require.NoError(t, repo.Save(ctx, testutil.Definitions()))

	deleted, err := repo.Delete(ctx, testutil.FormFireBolt)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, testutil.FormFireBolt)
	require.NoError(t, err)
	assert.False(t, deleted)

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Nil(t, catalog.Definition(testutil.FormFireBolt))
	assert.Equal(t, len(testutil.Definitions())-1, catalog.Len())
}

func TestDefinitionRepository_RejectsUnknownEnumText(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDefinitionRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO magic_effects (form_id, editor_id, hostile, hide_in_ui, archetype,
		                           resist_variable, casting_type, minimum_skill_level)
		VALUES (1, 'Typo', true, false, 'Absorbb', 'None', 'FireAndForget', 0)`)
	require.NoError(t, err)

	_, err = repo.Get(ctx, 1)
	assert.ErrorContains(t, err, `unknown archetype "Absorbb"`)

	_, err = pool.Exec(ctx, `UPDATE magic_effects SET archetype = 'Absorb', resist_variable = 'PoisonResistt' WHERE form_id = 1`)
	require.NoError(t, err)

	_, err = repo.LoadAll(ctx)
	assert.ErrorContains(t, err, `unknown resist variable "PoisonResistt"`)
}

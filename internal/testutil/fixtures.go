package testutil

import "github.com/udisondev/deathfx/internal/effect"

// Form IDs тестовых магических эффектов.
const (
	FormFireBolt     uint32 = 0x00012EB7
	FormIceSpike     uint32 = 0x0002B96B
	FormLightning    uint32 = 0x0002DD2A
	FormAbsorbHealth uint32 = 0x000A8294
	FormPoison       uint32 = 0x0003AC2C
	FormAcidSpray    uint32 = 0x0010FB8E
	FormSunFire      uint32 = 0x02019C34
	FormFear         uint32 = 0x0004DEE9
	FormCourage      uint32 = 0x0004DEEA
	FormHiddenCloak  uint32 = 0x0005B45F
)

func projectile(v int32) *int32 { return &v }

// Definitions возвращает свежие копии тестовых определений.
// Каждый вызов создаёт новые значения, тесты могут их менять.
func Definitions() []*effect.Definition {
	return []*effect.Definition{
		{
			FormID: FormFireBolt, EditorID: "FireDamageFFAimed", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValueFireResist,
			CastingType: effect.CastingFireAndForget, MinimumSkillLevel: 25,
			ProjectileType: projectile(2), Keywords: []string{"MagicDamageFire"},
		},
		{
			FormID: FormIceSpike, EditorID: "FrostDamageFFAimed", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValueFrostResist,
			CastingType: effect.CastingFireAndForget, MinimumSkillLevel: 25,
			ProjectileType: projectile(2), Keywords: []string{"MagicDamageFrost"},
		},
		{
			FormID: FormLightning, EditorID: "ShockDamageConcAimed", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValueElectricResist,
			CastingType: effect.CastingConcentration, MinimumSkillLevel: 50,
			ProjectileType: projectile(4), Keywords: []string{"MagicDamageShock"},
		},
		{
			FormID: FormAbsorbHealth, EditorID: "AbsorbHealthFFAimed", Hostile: true,
			Archetype: effect.ArchetypeAbsorb, CastingType: effect.CastingFireAndForget,
			MinimumSkillLevel: 75, ProjectileType: projectile(2),
		},
		{
			FormID: FormPoison, EditorID: "DamageHealthPoison", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValuePoisonResist,
			CastingType: effect.CastingFireAndForget,
		},
		{
			FormID: FormAcidSpray, EditorID: "AcidSprayConc", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValuePoisonResist,
			CastingType: effect.CastingConcentration, MinimumSkillLevel: 50,
			ProjectileType: projectile(5),
		},
		{
			FormID: FormSunFire, EditorID: "DLC1VampireSunFire", Hostile: true,
			Archetype: effect.ArchetypeValueModifier, CastingType: effect.CastingFireAndForget,
			MinimumSkillLevel: 50, ProjectileType: projectile(2),
			Keywords: []string{"MagicDamageFire", "PO3_MagicDamageSun"},
		},
		{
			FormID: FormFear, EditorID: "FearFFAimed", Hostile: true,
			Archetype: effect.ArchetypeDemoralize, CastingType: effect.CastingFireAndForget,
			MinimumSkillLevel: 25, ProjectileType: projectile(2),
		},
		{
			FormID: FormCourage, EditorID: "CourageFFAimed",
			Archetype: effect.ArchetypeRally, CastingType: effect.CastingFireAndForget,
		},
		{
			FormID: FormHiddenCloak, EditorID: "FlameCloakDamage", Hostile: true, HideInUI: true,
			Archetype: effect.ArchetypeValueModifier, ResistVariable: effect.ActorValueFireResist,
			CastingType: effect.CastingFireAndForget,
			Keywords: []string{"MagicDamageFire", "FEC_MagicNoEffect"},
		},
	}
}

// Catalog возвращает effect.Catalog из Definitions().
func Catalog() *effect.Catalog {
	return effect.NewCatalog(Definitions())
}

// Resolver возвращает resolver с тестовым каталогом и vanilla keywords.
func Resolver() *effect.Resolver {
	return effect.NewResolver(Catalog(), effect.DefaultKeywords())
}

package effect

// Keywords names the keywords the resolver tests definitions and killers
// against. Load order mods rename these, so they come from configuration.
type Keywords struct {
	NoDeathEffect string
	Sun           string
	Fire          string
	Frost         string
	Shock         string
	Ghost         string
}

// DefaultKeywords returns the editor IDs used by the base game and the
// death effects mods that consume the classifier.
func DefaultKeywords() Keywords {
	return Keywords{
		NoDeathEffect: "FEC_MagicNoEffect",
		Sun:           "PO3_MagicDamageSun",
		Fire:          "MagicDamageFire",
		Frost:         "MagicDamageFrost",
		Shock:         "MagicDamageShock",
		Ghost:         "ActorTypeGhost",
	}
}

// Resolver turns engine snapshots into classifier records and answers the
// snapshot queries scripts make (active effect listing, archetype lookup).
type Resolver struct {
	defs     DefinitionSource
	keywords Keywords
}

// NewResolver creates a Resolver over defs.
func NewResolver(defs DefinitionSource, keywords Keywords) *Resolver {
	return &Resolver{defs: defs, keywords: keywords}
}

// Records resolves every instance with a known definition, preserving order.
// Instances whose definition is missing are skipped.
func (r *Resolver) Records(snap Snapshot) []Record {
	out := make([]Record, 0, len(snap))
	for _, inst := range snap {
		def := r.defs.Definition(inst.FormID)
		if def == nil {
			continue
		}
		out = append(out, r.record(inst, def))
	}
	return out
}

func (r *Resolver) record(inst Instance, def *Definition) Record {
	rec := Record{
		BaseEffect:        def.FormID,
		Hostile:           def.Hostile,
		HiddenFromUI:      def.HideInUI,
		Magnitude:         inst.Magnitude,
		Sun:               def.HasKeyword(r.keywords.Sun),
		Fire:              def.HasKeyword(r.keywords.Fire),
		Frost:             def.HasKeyword(r.keywords.Frost),
		Shock:             def.HasKeyword(r.keywords.Shock),
		NoDeathEffect:     def.HasKeyword(r.keywords.NoDeathEffect),
		Archetype:         def.Archetype,
		ResistVariable:    def.ResistVariable,
		CastingType:       def.CastingType,
		MinimumSkillLevel: def.MinimumSkillLevel,
	}
	if def.ProjectileType != nil {
		rec.HasProjectile = true
		rec.ProjectileType = *def.ProjectileType
	}
	return rec
}

// Killer builds the killer view from its keyword list.
// Returns nil when there is no killer.
func (r *Resolver) Killer(present bool, keywords []string) *Killer {
	if !present {
		return nil
	}
	probe := Definition{Keywords: keywords}
	return &Killer{Ghost: probe.HasKeyword(r.keywords.Ghost)}
}

// ActiveEffects returns the base effects in snap, in order. Unless
// includeInactive is set, inactive or dispelled instances and effects hidden
// from the UI are left out.
func (r *Resolver) ActiveEffects(snap Snapshot, includeInactive bool) []uint32 {
	out := make([]uint32, 0, len(snap))
	for _, inst := range snap {
		def := r.defs.Definition(inst.FormID)
		if def == nil {
			continue
		}
		if !includeInactive && (inst.Inactive || inst.Dispelled || def.HideInUI) {
			continue
		}
		out = append(out, def.FormID)
	}
	return out
}

// HasArchetype reports whether any effect in snap has the named archetype.
// Unknown archetype names never match.
func (r *Resolver) HasArchetype(snap Snapshot, name string) bool {
	archetype, ok := ParseArchetype(name)
	if !ok {
		return false
	}
	for _, inst := range snap {
		def := r.defs.Definition(inst.FormID)
		if def != nil && def.Archetype == archetype {
			return true
		}
	}
	return false
}

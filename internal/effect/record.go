package effect

// Record is a read-only view of one active effect on a character, already
// resolved against its definition. Records are built by Resolver from a
// Snapshot and handed to the death effect classifier.
type Record struct {
	BaseEffect uint32 // form ID of the effect definition

	Hostile      bool
	HiddenFromUI bool

	// Magnitude as tracked by the engine. Damage effects are stored negative.
	Magnitude float32

	Sun           bool
	Fire          bool
	Frost         bool
	Shock         bool
	NoDeathEffect bool

	Archetype      Archetype
	ResistVariable ActorValue
	CastingType    CastingType

	MinimumSkillLevel int32
	HasProjectile     bool
	ProjectileType    int32
}

// Severity returns the positive-normalized magnitude used for ranking.
// The engine stores damage magnitudes negative; those are sign-flipped,
// positive magnitudes are taken as is.
func (r *Record) Severity() float32 {
	if r.Magnitude < 0 {
		return -r.Magnitude
	}
	return r.Magnitude
}

// Projectile returns the projectile type, or -1 if the effect has none.
func (r *Record) Projectile() int32 {
	if !r.HasProjectile {
		return -1
	}
	return r.ProjectileType
}

// Killer is the entity that killed the character.
// Only its keyword membership is consulted.
type Killer struct {
	Ghost bool
}

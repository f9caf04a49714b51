// Package deatheffect infers which death category best explains a
// character's death from the hostile magic effects active on it.
//
// Classify is a pure function over a snapshot: it never mutates its input,
// never fails, and degrades to NoResult whenever nothing qualifies.
package deatheffect

import "github.com/udisondev/deathfx/internal/effect"

type bucketKind int

const (
	bucketFire bucketKind = iota
	bucketFrost
	bucketShock
	bucketDrain
	bucketPoison
	bucketFear
	bucketCount
)

var bucketCategory = [bucketCount]Category{
	bucketFire:   CategoryFire,
	bucketFrost:  CategoryFrost,
	bucketShock:  CategoryShock,
	bucketDrain:  CategoryDrain,
	bucketPoison: CategoryPoison,
	bucketFear:   CategoryFear,
}

// entry is one candidate effect with its positive severity.
type entry struct {
	rec      *effect.Record
	severity float32
}

// bucket keeps the maximal entry seen so far.
// A later entry replaces the current one only when the current severity is
// definitely less, so the first of several near-equal maxima wins.
type bucket struct {
	best entry
	n    int
}

func (b *bucket) add(e entry) {
	if b.n == 0 || DefinitelyLessThan(b.best.severity, e.severity) {
		b.best = e
	}
	b.n++
}

func (b *bucket) empty() bool { return b.n == 0 }

type buckets [bucketCount]bucket

func (bs *buckets) nonEmpty() int {
	n := 0
	for i := range bs {
		if !bs[i].empty() {
			n++
		}
	}
	return n
}

// Classify returns the death category for effects under mode.
// killer may be nil.
func Classify(effects []effect.Record, killer *effect.Killer, mode Mode) Result {
	if len(effects) == 0 {
		return NoResult
	}

	var bs buckets
	for i := range effects {
		rec := &effects[i]
		if !rec.Hostile || rec.NoDeathEffect {
			continue
		}

		e := entry{rec: rec, severity: rec.Severity()}

		if mode == ModeElemental {
			switch {
			case rec.Sun:
				return resultFor(CategorySun, rec)
			case isAcid(rec):
				return resultFor(CategoryAcid, rec)
			case rec.Fire:
				bs[bucketFire].add(e)
			case rec.Frost:
				bs[bucketFrost].add(e)
			case rec.Shock:
				bs[bucketShock].add(e)
			case rec.Archetype == effect.ArchetypeAbsorb:
				bs[bucketDrain].add(e)
			}
			continue
		}

		switch {
		case isPoison(rec):
			bs[bucketPoison].add(e)
		case rec.Archetype == effect.ArchetypeDemoralize || (killer != nil && killer.Ghost):
			// Fear-shaped effects land in Drain; nothing ever fills bucketFear.
			bs[bucketDrain].add(e)
		}
	}

	switch bs.nonEmpty() {
	case 0:
		return NoResult
	case 1:
		for k := range bs {
			if !bs[k].empty() {
				return resultFor(bucketCategory[k], bs[k].best.rec)
			}
		}
	}

	if mode == ModeElemental {
		return resolveElemental(&bs)
	}
	return resolveResist(&bs)
}

func isAcid(rec *effect.Record) bool {
	return rec.ResistVariable == effect.ActorValuePoisonResist && rec.CastingType == effect.CastingConcentration
}

func isPoison(rec *effect.Record) bool {
	return rec.ResistVariable == effect.ActorValuePoisonResist && rec.CastingType != effect.CastingConcentration
}

// resolveResist handles several non-empty buckets in Resist mode.
// Poison wins over Fear and upgrades to PoisonFear when both are present.
// Because accumulation never fills the Fear bucket, the Fear branches are
// unreachable today; they are kept so a future Fear rule slots straight in.
func resolveResist(bs *buckets) Result {
	poison := &bs[bucketPoison]
	fear := &bs[bucketFear]

	switch {
	case !poison.empty():
		category := CategoryPoison
		if !fear.empty() {
			category = CategoryPoisonFear
		}
		return resultFor(category, poison.best.rec)
	case !fear.empty():
		return resultFor(CategoryFear, fear.best.rec)
	}
	return NoResult
}

// resolveElemental handles several non-empty buckets in Elemental mode.
// Primary priority is Fire > Drain > Frost > Shock.
func resolveElemental(bs *buckets) Result {
	fire := &bs[bucketFire]
	frost := &bs[bucketFrost]
	shock := &bs[bucketShock]
	drain := &bs[bucketDrain]

	switch {
	case !fire.empty():
		category := CategoryFire
		if !frost.empty() {
			category = CategoryFireFrost
		} else if !shock.empty() {
			category = CategoryFireShock
		}
		return resultFor(category, fire.best.rec)

	case !drain.empty():
		rep := drain.best
		category := CategoryDrain
		if !shock.empty() {
			category = CategoryDrainShock
			rep = stronger(rep, shock.best)
		} else if !frost.empty() {
			category = CategoryDrainFrost
			rep = stronger(rep, frost.best)
		}
		return resultFor(category, rep.rec)

	case !frost.empty():
		if !shock.empty() {
			if DefinitelyLessThan(frost.best.severity, shock.best.severity) {
				return resultFor(CategoryShockFrost, shock.best.rec)
			}
			return resultFor(CategoryFrostShock, frost.best.rec)
		}
		return resultFor(CategoryFrost, frost.best.rec)

	case !shock.empty():
		return resultFor(CategoryShock, shock.best.rec)
	}
	return NoResult
}

// stronger returns other only if primary is definitely weaker.
func stronger(primary, other entry) entry {
	if DefinitelyLessThan(primary.severity, other.severity) {
		return other
	}
	return primary
}

func resultFor(category Category, rec *effect.Record) Result {
	if category == CategoryNone || rec == nil {
		return NoResult
	}
	return Result{
		Category:          category,
		MinimumSkillLevel: rec.MinimumSkillLevel,
		ProjectileType:    rec.Projectile(),
	}
}

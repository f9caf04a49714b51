package deatheffect

import (
	"fmt"
	"strings"
)

// Mode selects which bucket rules and overrides apply.
// Scripts call the classifier once per mode: Elemental picks the visual
// death effect, Resist picks auxiliary content (sounds, dialogue).
type Mode int32

const (
	ModeElemental Mode = 0
	ModeResist    Mode = 1
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeElemental:
		return "elemental"
	case ModeResist:
		return "resist"
	default:
		return fmt.Sprintf("mode(%d)", int32(m))
	}
}

// ParseMode parses "elemental"/"resist" or the numeric wire value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "elemental", "0":
		return ModeElemental, nil
	case "resist", "1":
		return ModeResist, nil
	default:
		return 0, fmt.Errorf("unknown death effect mode %q", s)
	}
}

// Category is the inferred cause of death.
// Values are the codes scripts receive in slot 0 of the result array.
type Category int32

const (
	CategoryNone Category = -1
)

const (
	CategorySun Category = iota
	CategoryAcid
	CategoryFire
	CategoryFrost
	CategoryShock
	CategoryDrain
	CategoryPoison
	CategoryFear
	CategoryFireFrost
	CategoryFireShock
	CategoryDrainShock
	CategoryDrainFrost
	CategoryFrostShock
	CategoryShockFrost
	CategoryPoisonFear
)

var categoryNames = [...]string{
	CategorySun:        "Sun",
	CategoryAcid:       "Acid",
	CategoryFire:       "Fire",
	CategoryFrost:      "Frost",
	CategoryShock:      "Shock",
	CategoryDrain:      "Drain",
	CategoryPoison:     "Poison",
	CategoryFear:       "Fear",
	CategoryFireFrost:  "FireFrost",
	CategoryFireShock:  "FireShock",
	CategoryDrainShock: "DrainShock",
	CategoryDrainFrost: "DrainFrost",
	CategoryFrostShock: "FrostShock",
	CategoryShockFrost: "ShockFrost",
	CategoryPoisonFear: "PoisonFear",
}

func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int32(c))
}

// Result is the classifier output.
// MinimumSkillLevel and ProjectileType are -1 when unknown.
type Result struct {
	Category          Category
	MinimumSkillLevel int32
	ProjectileType    int32
}

// NoResult is returned whenever nothing explains the death.
var NoResult = Result{
	Category:          CategoryNone,
	MinimumSkillLevel: -1,
	ProjectileType:    -1,
}

// Ints returns the result in the int[3] layout scripts expect.
func (r Result) Ints() [3]int32 {
	return [3]int32{int32(r.Category), r.MinimumSkillLevel, r.ProjectileType}
}

package effect

import (
	"fmt"
	"strings"
)

// Archetype is the magic effect archetype.
// Values follow the engine's archetype ordering.
type Archetype int32

const (
	ArchetypeValueModifier Archetype = iota
	ArchetypeScript
	ArchetypeDispel
	ArchetypeCureDisease
	ArchetypeAbsorb
	ArchetypeDualValueModifier
	ArchetypeCalm
	ArchetypeDemoralize
	ArchetypeFrenzy
	ArchetypeDisarm
	ArchetypeCommandSummoned
	ArchetypeInvisibility
	ArchetypeLight
	ArchetypeDarkness
	ArchetypeNightEye
	ArchetypeLock
	ArchetypeOpen
	ArchetypeBoundWeapon
	ArchetypeSummonCreature
	ArchetypeDetectLife
	ArchetypeTelekinesis
	ArchetypeParalysis
	ArchetypeReanimate
	ArchetypeSoulTrap
	ArchetypeTurnUndead
	ArchetypeGuide
	ArchetypeWerewolfFeed
	ArchetypeCureParalysis
	ArchetypeCureAddiction
	ArchetypeCurePoison
	ArchetypeConcussion
	ArchetypeValueAndParts
	ArchetypeAccumulateMagnitude
	ArchetypeStagger
	ArchetypePeakValueModifier
	ArchetypeCloak
	ArchetypeWerewolf
	ArchetypeSlowTime
	ArchetypeRally
	ArchetypeEnhanceWeapon
	ArchetypeSpawnHazard
	ArchetypeEtherealize
	ArchetypeBanish
	ArchetypeSpawnScriptedRef
	ArchetypeDisguise
	ArchetypeGrabActor
	ArchetypeVampireLord

	// ArchetypeOther covers anything the tables below do not name.
	ArchetypeOther Archetype = -1
)

var archetypeNames = [...]string{
	ArchetypeValueModifier:       "ValueModifier",
	ArchetypeScript:              "Script",
	ArchetypeDispel:              "Dispel",
	ArchetypeCureDisease:         "CureDisease",
	ArchetypeAbsorb:              "Absorb",
	ArchetypeDualValueModifier:   "DualValueModifier",
	ArchetypeCalm:                "Calm",
	ArchetypeDemoralize:          "Demoralize",
	ArchetypeFrenzy:              "Frenzy",
	ArchetypeDisarm:              "Disarm",
	ArchetypeCommandSummoned:     "CommandSummoned",
	ArchetypeInvisibility:        "Invisibility",
	ArchetypeLight:               "Light",
	ArchetypeDarkness:            "Darkness",
	ArchetypeNightEye:            "NightEye",
	ArchetypeLock:                "Lock",
	ArchetypeOpen:                "Open",
	ArchetypeBoundWeapon:         "BoundWeapon",
	ArchetypeSummonCreature:      "SummonCreature",
	ArchetypeDetectLife:          "DetectLife",
	ArchetypeTelekinesis:         "Telekinesis",
	ArchetypeParalysis:           "Paralysis",
	ArchetypeReanimate:           "Reanimate",
	ArchetypeSoulTrap:            "SoulTrap",
	ArchetypeTurnUndead:          "TurnUndead",
	ArchetypeGuide:               "Guide",
	ArchetypeWerewolfFeed:        "WerewolfFeed",
	ArchetypeCureParalysis:       "CureParalysis",
	ArchetypeCureAddiction:       "CureAddiction",
	ArchetypeCurePoison:          "CurePoison",
	ArchetypeConcussion:          "Concussion",
	ArchetypeValueAndParts:       "ValueAndParts",
	ArchetypeAccumulateMagnitude: "AccumulateMagnitude",
	ArchetypeStagger:             "Stagger",
	ArchetypePeakValueModifier:   "PeakValueModifier",
	ArchetypeCloak:               "Cloak",
	ArchetypeWerewolf:            "Werewolf",
	ArchetypeSlowTime:            "SlowTime",
	ArchetypeRally:               "Rally",
	ArchetypeEnhanceWeapon:       "EnhanceWeapon",
	ArchetypeSpawnHazard:         "SpawnHazard",
	ArchetypeEtherealize:         "Etherealize",
	ArchetypeBanish:              "Banish",
	ArchetypeSpawnScriptedRef:    "SpawnScriptedRef",
	ArchetypeDisguise:            "Disguise",
	ArchetypeGrabActor:           "GrabActor",
	ArchetypeVampireLord:         "VampireLord",
}

func (a Archetype) String() string {
	if a >= 0 && int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return "Other"
}

// ParseArchetype matches an archetype name case-insensitively.
// Unknown names return ArchetypeOther and false.
func ParseArchetype(name string) (Archetype, bool) {
	name = strings.TrimSpace(name)
	for i, n := range archetypeNames {
		if strings.EqualFold(n, name) {
			return Archetype(i), true
		}
	}
	return ArchetypeOther, false
}

// MarshalText implements encoding.TextMarshaler (YAML definitions files).
func (a Archetype) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// "Other" (or empty) is ArchetypeOther; any other unknown name is an error.
func (a *Archetype) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	if name == "" || strings.EqualFold(name, "Other") {
		*a = ArchetypeOther
		return nil
	}
	v, ok := ParseArchetype(name)
	if !ok {
		return fmt.Errorf("unknown archetype %q", name)
	}
	*a = v
	return nil
}

// ActorValue is the actor value an effect is resisted by.
type ActorValue int32

const (
	ActorValueNone ActorValue = iota
	ActorValuePoisonResist
	ActorValueFireResist
	ActorValueFrostResist
	ActorValueElectricResist
	ActorValueMagicResist
	ActorValueDiseaseResist
	ActorValueOther
)

var actorValueNames = [...]string{
	ActorValueNone:           "None",
	ActorValuePoisonResist:   "PoisonResist",
	ActorValueFireResist:     "FireResist",
	ActorValueFrostResist:    "FrostResist",
	ActorValueElectricResist: "ElectricResist",
	ActorValueMagicResist:    "MagicResist",
	ActorValueDiseaseResist:  "DiseaseResist",
	ActorValueOther:          "Other",
}

func (v ActorValue) String() string {
	if v >= 0 && int(v) < len(actorValueNames) {
		return actorValueNames[v]
	}
	return fmt.Sprintf("ActorValue(%d)", int32(v))
}

// ParseActorValue matches a resist name case-insensitively.
// Empty input is ActorValueNone. Resists outside the list must be spelled
// "Other"; unknown names are an error.
func ParseActorValue(name string) (ActorValue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ActorValueNone, nil
	}
	for i, n := range actorValueNames {
		if strings.EqualFold(n, name) {
			return ActorValue(i), nil
		}
	}
	return ActorValueNone, fmt.Errorf("unknown resist variable %q", name)
}

func (v ActorValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *ActorValue) UnmarshalText(text []byte) error {
	av, err := ParseActorValue(string(text))
	if err != nil {
		return err
	}
	*v = av
	return nil
}

// CastingType is how the source spell is delivered.
type CastingType int32

const (
	CastingConstantEffect CastingType = iota
	CastingFireAndForget
	CastingConcentration
	CastingScroll
)

var castingTypeNames = [...]string{
	CastingConstantEffect: "ConstantEffect",
	CastingFireAndForget:  "FireAndForget",
	CastingConcentration:  "Concentration",
	CastingScroll:         "Scroll",
}

func (c CastingType) String() string {
	if c >= 0 && int(c) < len(castingTypeNames) {
		return castingTypeNames[c]
	}
	return fmt.Sprintf("CastingType(%d)", int32(c))
}

// ParseCastingType matches a casting type name case-insensitively.
func ParseCastingType(name string) (CastingType, error) {
	name = strings.TrimSpace(name)
	for i, n := range castingTypeNames {
		if strings.EqualFold(n, name) {
			return CastingType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown casting type %q", name)
}

func (c CastingType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CastingType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CastingFireAndForget
		return nil
	}
	v, err := ParseCastingType(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

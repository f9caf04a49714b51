package query

// Request opcodes (client → service)
const (
	OpcodeClassifyDeath byte = 0x01
	OpcodeActiveEffects byte = 0x02
	OpcodeHasArchetype  byte = 0x03
	OpcodePing          byte = 0x04
)

// Reply opcodes (service → client). A reply is its request opcode | 0x80.
const (
	OpcodeDeathEffectType byte = 0x81
	OpcodeEffectList      byte = 0x82
	OpcodeArchetypeFound  byte = 0x83
	OpcodePong            byte = 0x84
	OpcodeError           byte = 0xFF
)

// noKiller is the killer keyword count sent when the actor has no killer.
const noKiller int32 = -1

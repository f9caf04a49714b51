package query

import (
	"errors"
	"fmt"

	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/query/packet"
)

// ErrRemote wraps an error reply sent by the service.
var ErrRemote = errors.New("remote error")

// writeDeathEffectType writes the int[3] death effect reply.
func writeDeathEffectType(w *packet.Writer, res deatheffect.Result) {
	_ = w.WriteByte(OpcodeDeathEffectType)
	for _, v := range res.Ints() {
		w.WriteInt(v)
	}
}

func writeEffectList(w *packet.Writer, formIDs []uint32) {
	_ = w.WriteByte(OpcodeEffectList)
	w.WriteInt(int32(len(formIDs)))
	for _, id := range formIDs {
		w.WriteUint(id)
	}
}

func writeArchetypeFound(w *packet.Writer, found bool) {
	_ = w.WriteByte(OpcodeArchetypeFound)
	w.WriteBool(found)
}

func writeError(w *packet.Writer, msg string) {
	_ = w.WriteByte(OpcodeError)
	w.WriteString(msg)
}

// replyReader checks the reply opcode and returns a reader over the body.
// Error replies become ErrRemote.
func replyReader(payload []byte, want byte) (*packet.Reader, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty reply")
	}
	r := packet.NewReader(payload[1:])
	switch payload[0] {
	case want:
		return r, nil
	case OpcodeError:
		msg, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("reading error reply: %w", err)
		}
		return nil, fmt.Errorf("%w: %s", ErrRemote, msg)
	default:
		return nil, fmt.Errorf("unexpected reply opcode 0x%02x (want 0x%02x)", payload[0], want)
	}
}

// ParseDeathEffectType decodes a DeathEffectType reply.
func ParseDeathEffectType(payload []byte) (deatheffect.Result, error) {
	r, err := replyReader(payload, OpcodeDeathEffectType)
	if err != nil {
		return deatheffect.NoResult, err
	}
	var vals [3]int32
	for i := range vals {
		if vals[i], err = r.ReadInt(); err != nil {
			return deatheffect.NoResult, fmt.Errorf("reading result[%d]: %w", i, err)
		}
	}
	return deatheffect.Result{
		Category:          deatheffect.Category(vals[0]),
		MinimumSkillLevel: vals[1],
		ProjectileType:    vals[2],
	}, nil
}

// ParseEffectList decodes an EffectList reply.
func ParseEffectList(payload []byte) ([]uint32, error) {
	r, err := replyReader(payload, OpcodeEffectList)
	if err != nil {
		return nil, err
	}
	n, err := r.ReadCount(1<<16, 4)
	if err != nil {
		return nil, fmt.Errorf("reading effect list count: %w", err)
	}
	ids := make([]uint32, n)
	for i := range ids {
		if ids[i], err = r.ReadUint(); err != nil {
			return nil, fmt.Errorf("reading effect list[%d]: %w", i, err)
		}
	}
	return ids, nil
}

// ParseArchetypeFound decodes an ArchetypeFound reply.
func ParseArchetypeFound(payload []byte) (bool, error) {
	r, err := replyReader(payload, OpcodeArchetypeFound)
	if err != nil {
		return false, err
	}
	return r.ReadBool()
}

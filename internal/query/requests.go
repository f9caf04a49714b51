package query

import (
	"fmt"

	"github.com/udisondev/deathfx/internal/constants"
	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/effect"
	"github.com/udisondev/deathfx/internal/query/packet"
)

// encoded size of one effect instance: formID + magnitude + two flags
const instanceWireSize = 4 + 8 + 1 + 1

// ClassifyDeathRequest asks for the death effect type of one actor.
type ClassifyDeathRequest struct {
	Mode           deatheffect.Mode
	HasKiller      bool
	KillerKeywords []string
	Effects        effect.Snapshot
}

// ActiveEffectsRequest asks for the base effects active on an actor.
type ActiveEffectsRequest struct {
	IncludeInactive bool
	Effects         effect.Snapshot
}

// HasArchetypeRequest asks whether an actor has an effect of an archetype.
type HasArchetypeRequest struct {
	Archetype string
	Effects   effect.Snapshot
}

func readSnapshot(r *packet.Reader) (effect.Snapshot, error) {
	n, err := r.ReadCount(constants.MaxSnapshotEffects, instanceWireSize)
	if err != nil {
		return nil, fmt.Errorf("reading effect count: %w", err)
	}

	snap := make(effect.Snapshot, n)
	for i := range snap {
		inst := &snap[i]
		if inst.FormID, err = r.ReadUint(); err != nil {
			return nil, fmt.Errorf("reading effect[%d] form id: %w", i, err)
		}
		mag, err := r.ReadDouble()
		if err != nil {
			return nil, fmt.Errorf("reading effect[%d] magnitude: %w", i, err)
		}
		inst.Magnitude = float32(mag)
		if inst.Inactive, err = r.ReadBool(); err != nil {
			return nil, fmt.Errorf("reading effect[%d] inactive: %w", i, err)
		}
		if inst.Dispelled, err = r.ReadBool(); err != nil {
			return nil, fmt.Errorf("reading effect[%d] dispelled: %w", i, err)
		}
	}
	return snap, nil
}

func writeSnapshot(w *packet.Writer, snap effect.Snapshot) {
	w.WriteInt(int32(len(snap)))
	for _, inst := range snap {
		w.WriteUint(inst.FormID)
		w.WriteDouble(float64(inst.Magnitude))
		w.WriteBool(inst.Inactive)
		w.WriteBool(inst.Dispelled)
	}
}

// ParseClassifyDeath decodes a ClassifyDeath body (opcode stripped).
func ParseClassifyDeath(body []byte) (*ClassifyDeathRequest, error) {
	r := packet.NewReader(body)

	mode, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("reading mode: %w", err)
	}
	req := &ClassifyDeathRequest{Mode: deatheffect.Mode(mode)}
	if req.Mode != deatheffect.ModeElemental && req.Mode != deatheffect.ModeResist {
		return nil, fmt.Errorf("invalid mode %d", mode)
	}

	kwCount, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("reading killer keyword count: %w", err)
	}
	if kwCount != noKiller {
		if kwCount < 0 || kwCount > constants.MaxKillerKeywords {
			return nil, fmt.Errorf("killer keyword count %d out of range", kwCount)
		}
		req.HasKiller = true
		req.KillerKeywords = make([]string, 0, kwCount)
		for i := range int(kwCount) {
			kw, err := r.ReadString()
			if err != nil {
				return nil, fmt.Errorf("reading killer keyword[%d]: %w", i, err)
			}
			req.KillerKeywords = append(req.KillerKeywords, kw)
		}
	}

	if req.Effects, err = readSnapshot(r); err != nil {
		return nil, err
	}
	return req, nil
}

// Encode appends the request packet (opcode included) to w.
func (req *ClassifyDeathRequest) Encode(w *packet.Writer) {
	_ = w.WriteByte(OpcodeClassifyDeath)
	w.WriteInt(int32(req.Mode))
	if !req.HasKiller {
		w.WriteInt(noKiller)
	} else {
		w.WriteInt(int32(len(req.KillerKeywords)))
		for _, kw := range req.KillerKeywords {
			w.WriteString(kw)
		}
	}
	writeSnapshot(w, req.Effects)
}

// ParseActiveEffects decodes an ActiveEffects body.
func ParseActiveEffects(body []byte) (*ActiveEffectsRequest, error) {
	r := packet.NewReader(body)

	inc, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("reading include inactive: %w", err)
	}
	snap, err := readSnapshot(r)
	if err != nil {
		return nil, err
	}
	return &ActiveEffectsRequest{IncludeInactive: inc, Effects: snap}, nil
}

// Encode appends the request packet to w.
func (req *ActiveEffectsRequest) Encode(w *packet.Writer) {
	_ = w.WriteByte(OpcodeActiveEffects)
	w.WriteBool(req.IncludeInactive)
	writeSnapshot(w, req.Effects)
}

// ParseHasArchetype decodes a HasArchetype body.
func ParseHasArchetype(body []byte) (*HasArchetypeRequest, error) {
	r := packet.NewReader(body)

	name, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading archetype: %w", err)
	}
	snap, err := readSnapshot(r)
	if err != nil {
		return nil, err
	}
	return &HasArchetypeRequest{Archetype: name, Effects: snap}, nil
}

// Encode appends the request packet to w.
func (req *HasArchetypeRequest) Encode(w *packet.Writer) {
	_ = w.WriteByte(OpcodeHasArchetype)
	w.WriteString(req.Archetype)
	writeSnapshot(w, req.Effects)
}

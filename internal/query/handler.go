package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/effect"
	"github.com/udisondev/deathfx/internal/query/packet"
)

// ErrUnknownOpcode is reported (as an error reply) for unrecognized requests.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Handler dispatches query packets by opcode.
// The resolver can be swapped at runtime (definitions reload).
type Handler struct {
	resolver atomic.Pointer[effect.Resolver]
}

// NewHandler creates a handler backed by resolver.
func NewHandler(resolver *effect.Resolver) *Handler {
	h := &Handler{}
	h.resolver.Store(resolver)
	return h
}

// SetResolver replaces the resolver used by subsequent requests.
func (h *Handler) SetResolver(resolver *effect.Resolver) {
	h.resolver.Store(resolver)
}

// Resolver returns the current resolver.
func (h *Handler) Resolver() *effect.Resolver {
	return h.resolver.Load()
}

// HandlePacket processes one request payload and writes the reply into w.
// Malformed requests get an error reply; the connection stays usable.
// Returns an error only when the payload cannot be dispatched at all.
func (h *Handler) HandlePacket(ctx context.Context, data []byte, w *packet.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty packet data")
	}

	opcode := data[0]
	body := data[1:]

	var err error
	switch opcode {
	case OpcodeClassifyDeath:
		err = h.handleClassifyDeath(body, w)
	case OpcodeActiveEffects:
		err = h.handleActiveEffects(body, w)
	case OpcodeHasArchetype:
		err = h.handleHasArchetype(body, w)
	case OpcodePing:
		_ = w.WriteByte(OpcodePong)
	default:
		err = fmt.Errorf("%w 0x%02X", ErrUnknownOpcode, opcode)
	}

	if err != nil {
		slog.DebugContext(ctx, "request rejected",
			"opcode", fmt.Sprintf("0x%02X", opcode),
			"error", err)
		w.Reset()
		writeError(w, err.Error())
	}
	return nil
}

func (h *Handler) handleClassifyDeath(body []byte, w *packet.Writer) error {
	req, err := ParseClassifyDeath(body)
	if err != nil {
		return fmt.Errorf("parsing ClassifyDeath: %w", err)
	}
	if len(req.Effects) == 0 {
		slog.Info("classify request without effects", "mode", req.Mode)
	}

	res := h.Classify(req)
	writeDeathEffectType(w, res)
	return nil
}

// Classify resolves the request snapshot and runs the death effect classifier.
func (h *Handler) Classify(req *ClassifyDeathRequest) deatheffect.Result {
	r := h.resolver.Load()
	records := r.Records(req.Effects)
	killer := r.Killer(req.HasKiller, req.KillerKeywords)
	return deatheffect.Classify(records, killer, req.Mode)
}

func (h *Handler) handleActiveEffects(body []byte, w *packet.Writer) error {
	req, err := ParseActiveEffects(body)
	if err != nil {
		return fmt.Errorf("parsing ActiveEffects: %w", err)
	}

	writeEffectList(w, h.resolver.Load().ActiveEffects(req.Effects, req.IncludeInactive))
	return nil
}

func (h *Handler) handleHasArchetype(body []byte, w *packet.Writer) error {
	req, err := ParseHasArchetype(body)
	if err != nil {
		return fmt.Errorf("parsing HasArchetype: %w", err)
	}

	writeArchetypeFound(w, h.resolver.Load().HasArchetype(req.Effects, req.Archetype))
	return nil
}

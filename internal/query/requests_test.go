package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/deathfx/internal/constants"
	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/effect"
	"github.com/udisondev/deathfx/internal/query/packet"
	"github.com/udisondev/deathfx/internal/testutil"
)

func encode(fn func(w *packet.Writer)) []byte {
	w := packet.NewWriter(64)
	fn(w)
	return w.Bytes()
}

func TestClassifyDeathRequest_EncodeParse(t *testing.T) {
	tests := []struct {
		name string
		req  ClassifyDeathRequest
	}{
		{
			name: "no killer",
			req: ClassifyDeathRequest{
				Mode: deatheffect.ModeElemental,
				Effects: effect.Snapshot{
					{FormID: testutil.FormFireBolt, Magnitude: 30},
					{FormID: testutil.FormIceSpike, Magnitude: 12.5, Inactive: true},
				},
			},
		},
		{
			name: "killer without keywords",
			req: ClassifyDeathRequest{
				Mode:           deatheffect.ModeResist,
				HasKiller:      true,
				KillerKeywords: []string{},
				Effects:        effect.Snapshot{{FormID: testutil.FormPoison, Magnitude: 3, Dispelled: true}},
			},
		},
		{
			name: "ghost killer",
			req: ClassifyDeathRequest{
				Mode:           deatheffect.ModeResist,
				HasKiller:      true,
				KillerKeywords: []string{"ActorTypeUndead", "ActorTypeGhost"},
				Effects:        effect.Snapshot{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(tt.req.Encode)
			require.Equal(t, OpcodeClassifyDeath, data[0])

			got, err := ParseClassifyDeath(data[1:])
			require.NoError(t, err)
			if diff := cmp.Diff(&tt.req, got); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseClassifyDeath_Errors(t *testing.T) {
	tests := []struct {
		name     string
		build    func(w *packet.Writer)
		truncate int
	}{
		{name: "empty", build: func(w *packet.Writer) {}},
		{name: "invalid mode", build: func(w *packet.Writer) {
			w.WriteInt(2)
			w.WriteInt(noKiller)
			w.WriteInt(0)
		}},
		{name: "negative keyword count", build: func(w *packet.Writer) {
			w.WriteInt(0)
			w.WriteInt(-5)
			w.WriteInt(0)
		}},
		{name: "too many keywords", build: func(w *packet.Writer) {
			w.WriteInt(0)
			w.WriteInt(constants.MaxKillerKeywords + 1)
		}},
		{name: "too many effects", build: func(w *packet.Writer) {
			w.WriteInt(0)
			w.WriteInt(noKiller)
			w.WriteInt(constants.MaxSnapshotEffects + 1)
		}},
		{name: "truncated effect", build: func(w *packet.Writer) {
			w.WriteInt(0)
			w.WriteInt(noKiller)
			w.WriteInt(1)
			w.WriteUint(testutil.FormFireBolt)
			w.WriteDouble(1)
			w.WriteBool(false)
			w.WriteBool(false)
		}, truncate: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(tt.build)
			data = data[:len(data)-tt.truncate]
			_, err := ParseClassifyDeath(data)
			assert.Error(t, err)
		})
	}
}

func TestActiveEffectsRequest_EncodeParse(t *testing.T) {
	req := ActiveEffectsRequest{
		IncludeInactive: true,
		Effects:         effect.Snapshot{{FormID: testutil.FormCourage, Magnitude: 1}},
	}

	data := encode(req.Encode)
	require.Equal(t, OpcodeActiveEffects, data[0])

	got, err := ParseActiveEffects(data[1:])
	require.NoError(t, err)
	assert.Equal(t, &req, got)
}

func TestHasArchetypeRequest_EncodeParse(t *testing.T) {
	req := HasArchetypeRequest{
		Archetype: "Demoralize",
		Effects:   effect.Snapshot{{FormID: testutil.FormFear, Magnitude: 25}},
	}

	data := encode(req.Encode)
	require.Equal(t, OpcodeHasArchetype, data[0])

	got, err := ParseHasArchetype(data[1:])
	require.NoError(t, err)
	assert.Equal(t, &req, got)

	_, err = ParseHasArchetype(data[1:4])
	assert.Error(t, err)
}

func TestReplies(t *testing.T) {
	res := deatheffect.Result{Category: deatheffect.CategoryFireFrost, MinimumSkillLevel: 25, ProjectileType: 2}
	got, err := ParseDeathEffectType(encode(func(w *packet.Writer) { writeDeathEffectType(w, res) }))
	require.NoError(t, err)
	assert.Equal(t, res, got)

	ids, err := ParseEffectList(encode(func(w *packet.Writer) {
		writeEffectList(w, []uint32{testutil.FormFireBolt, testutil.FormFear})
	}))
	require.NoError(t, err)
	assert.Equal(t, []uint32{testutil.FormFireBolt, testutil.FormFear}, ids)

	found, err := ParseArchetypeFound(encode(func(w *packet.Writer) { writeArchetypeFound(w, true) }))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestReplies_ErrorAndMismatch(t *testing.T) {
	errReply := encode(func(w *packet.Writer) { writeError(w, "bad request") })

	_, err := ParseDeathEffectType(errReply)
	require.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "bad request")

	_, err = ParseArchetypeFound(encode(func(w *packet.Writer) { writeEffectList(w, nil) }))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRemote)

	_, err = ParseEffectList(nil)
	assert.Error(t, err)
}

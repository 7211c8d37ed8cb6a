package hover

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globe-engine/internal/domain"
)

type transition struct {
	Type domain.HoverEventType
	Code string
}

func transitions(events []domain.HoverEvent) []transition {
	out := make([]transition, len(events))
	for i, e := range events {
		out[i] = transition{e.Type, e.Code}
	}
	return out
}

func hit(owner string, dist float64) domain.Intersection {
	return domain.Intersection{Owner: owner, Distance: dist}
}

func TestTracker_ScenarioHighlightClearSwitch(t *testing.T) {
	tr := NewTracker()

	var got []domain.HoverEvent
	got = append(got, tr.Update([]domain.Intersection{hit("FRA", 1.0)})...)
	got = append(got, tr.Update(nil)...)
	got = append(got, tr.Update([]domain.Intersection{hit("DEU", 2.0)})...)

	assert.Equal(t, []transition{
		{domain.HoverHighlight, "FRA"},
		{domain.HoverUnhighlight, "FRA"},
		{domain.HoverHighlight, "DEU"},
	}, transitions(got))

	code, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, "DEU", code)
}

func TestTracker_DirectSwitchUnhighlightsFirst(t *testing.T) {
	tr := NewTracker()
	tr.Update([]domain.Intersection{hit("FRA", 1)})

	events := tr.Update([]domain.Intersection{hit("ESP", 1)})
	assert.Equal(t, []transition{
		{domain.HoverUnhighlight, "FRA"},
		{domain.HoverHighlight, "ESP"},
	}, transitions(events))
	assert.Equal(t, domain.NormalBorderStyle, events[0].Style)
	assert.Equal(t, domain.HighlightBorderStyle, events[1].Style)
}

func TestTracker_IdempotentAndIdle(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.Update(nil), "miss while idle")
	assert.Len(t, tr.Update([]domain.Intersection{hit("ITA", 1)}), 1)
	assert.Empty(t, tr.Update([]domain.Intersection{hit("ITA", 0.5)}), "same owner")
	assert.Empty(t, tr.Update([]domain.Intersection{hit("ITA", 0.5), hit("CHE", 0.9)}))
}

func TestTracker_NearestWinsOverListOrder(t *testing.T) {
	tr := NewTracker()

	events := tr.Update([]domain.Intersection{hit("FAR", 3), hit("NEAR", 1), hit("TIE", 1)})
	require.Len(t, events, 1)
	assert.Equal(t, "NEAR", events[0].Code)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	assert.Empty(t, tr.Reset())

	tr.Update([]domain.Intersection{hit("JPN", 1)})
	assert.Equal(t, []transition{{domain.HoverUnhighlight, "JPN"}}, transitions(tr.Reset()))
	assert.Equal(t, domain.HoverState{}, tr.State())
}

func TestTracker_SubscribeAndDispose(t *testing.T) {
	tr := NewTracker()

	var first, second []domain.HoverEvent
	disposeFirst := tr.Subscribe(func(e domain.HoverEvent) { first = append(first, e) })
	disposeSecond := tr.Subscribe(func(e domain.HoverEvent) { second = append(second, e) })
	defer disposeSecond()

	tr.Update([]domain.Intersection{hit("FRA", 1)})
	disposeFirst()
	disposeFirst()
	tr.Update([]domain.Intersection{hit("DEU", 1)})

	assert.Equal(t, []transition{{domain.HoverHighlight, "FRA"}}, transitions(first))
	assert.Equal(t, []transition{
		{domain.HoverHighlight, "FRA"},
		{domain.HoverUnhighlight, "FRA"},
		{domain.HoverHighlight, "DEU"},
	}, transitions(second))
}

func TestTracker_DisposeDuringEmit(t *testing.T) {
	tr := NewTracker()

	var first, second, third []domain.HoverEvent
	var disposeFirst, disposeThird func()
	disposeFirst = tr.Subscribe(func(e domain.HoverEvent) {
		first = append(first, e)
		disposeFirst()
		disposeThird()
	})
	tr.Subscribe(func(e domain.HoverEvent) { second = append(second, e) })
	disposeThird = tr.Subscribe(func(e domain.HoverEvent) { third = append(third, e) })

	tr.Update([]domain.Intersection{hit("FRA", 1)})
	require.NotPanics(t, func() { tr.Update([]domain.Intersection{hit("DEU", 1)}) })

	// first saw only the event it disposed on, third was removed before its turn
	assert.Equal(t, []transition{{domain.HoverHighlight, "FRA"}}, transitions(first))
	assert.Empty(t, third)
	assert.Equal(t, []transition{
		{domain.HoverHighlight, "FRA"},
		{domain.HoverUnhighlight, "FRA"},
		{domain.HoverHighlight, "DEU"},
	}, transitions(second))
}

func TestTracker_SubscribeNil(t *testing.T) {
	tr := NewTracker()

	dispose := tr.Subscribe(nil)
	require.NotNil(t, dispose)

	var got []domain.HoverEvent
	tr.Subscribe(func(e domain.HoverEvent) { got = append(got, e) })

	assert.NotPanics(t, func() { tr.Update([]domain.Intersection{hit("FRA", 1)}) })
	assert.Len(t, got, 1)
	assert.NotPanics(t, dispose)
}

func TestTracker_ScriptedSequencesKeepSingleHighlight(t *testing.T) {
	codes := []string{"FRA", "DEU", "ITA", "ESP"}
	rng := rand.New(rand.NewSource(7))

	tr := NewTracker()
	var log []domain.HoverEvent
	tr.Subscribe(func(e domain.HoverEvent) { log = append(log, e) })

	for step := 0; step < 2000; step++ {
		var hits []domain.Intersection
		for n := rng.Intn(4); n > 0; n-- {
			hits = append(hits, hit(codes[rng.Intn(len(codes))], float64(rng.Intn(3))))
		}
		events := tr.Update(hits)
		assert.LessOrEqual(t, len(events), 2)

		owner, ok := Nearest(hits)
		code, active := tr.Current()
		assert.Equal(t, ok, active)
		if ok {
			assert.Equal(t, owner, code)
		}
	}

	active := ""
	var lastHighlight string
	for i, e := range log {
		switch e.Type {
		case domain.HoverHighlight:
			require.Empty(t, active, "event %d: highlight while %s active", i, active)
			require.NotEqual(t, lastHighlight, e.Code, "event %d: repeated highlight", i)
			active = e.Code
			lastHighlight = e.Code
		case domain.HoverUnhighlight:
			require.Equal(t, active, e.Code, "event %d", i)
			active = ""
			lastHighlight = ""
		}
	}
}

package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aspire/parameter"
)

func TestDispatchOrderAndRouting(t *testing.T) {
	r := NewRouter()
	var got []string

	r.Subscribe(Scroll, func(ev Event) { got = append(got, "a") })
	r.Subscribe(Scroll, func(ev Event) { got = append(got, "b") })
	r.Subscribe(Resize, func(ev Event) { got = append(got, "resize") })

	r.Push(ScrollTo(10))
	r.Push(Resized(80, 24))
	assert.Equal(t, 2, r.DispatchAll())
	assert.Equal(t, []string{"a", "b", "resize"}, got)
	assert.Equal(t, 0, r.DispatchAll())
}

func TestCancelStopsDelivery(t *testing.T) {
	r := NewRouter()
	calls := 0
	sub := r.Subscribe(PointerMove, func(ev Event) { calls++ })
	other := r.Subscribe(PointerMove, func(ev Event) {})

	r.Push(PointerAt(0.1, 0.2))
	r.DispatchAll()
	require.Equal(t, 1, calls)

	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 1, r.Subscribers(PointerMove))

	r.Push(PointerAt(0.3, 0.4))
	r.DispatchAll()
	assert.Equal(t, 1, calls)

	other.Cancel()
	assert.Zero(t, r.Subscribers(PointerMove))

	var nilSub *Subscription
	nilSub.Cancel()
}

func TestCancelDuringDispatch(t *testing.T) {
	r := NewRouter()
	var sub *Subscription
	seen := 0
	sub = r.Subscribe(Scroll, func(ev Event) {
		seen++
		sub.Cancel()
	})
	r.Push(ScrollBy(1))
	r.Push(ScrollBy(1))
	r.DispatchAll()
	assert.Equal(t, 1, seen)
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.InputQueueSize + 10
	// Alternating types never merge
	for i := 0; i < total; i++ {
		if i%2 == 0 {
			q.Push(ScrollTo(float64(i)))
		} else {
			q.Push(PointerAt(float64(i), 0))
		}
	}
	assert.Equal(t, parameter.InputQueueSize, q.Len())

	events := q.Consume()
	require.Len(t, events, parameter.InputQueueSize)
	assert.Equal(t, Scroll, events[0].Type)
	assert.Equal(t, float64(10), events[0].Y)
	assert.Equal(t, float64(total-1), events[len(events)-1].X)
	assert.Nil(t, q.Consume())

	merged, dropped := q.Stats()
	assert.Zero(t, merged)
	assert.Equal(t, uint64(10), dropped)
}

func TestQueueMergesConsecutive(t *testing.T) {
	tests := []struct {
		name   string
		pushes []Event
		want   []Event
	}{
		{
			name:   "pointer moves keep latest",
			pushes: []Event{PointerAt(0.1, 0.1), PointerAt(0.2, 0.2), PointerAt(0.3, -0.4)},
			want:   []Event{PointerAt(0.3, -0.4)},
		},
		{
			name:   "resizes keep latest",
			pushes: []Event{Resized(80, 24), Resized(100, 30)},
			want:   []Event{Resized(100, 30)},
		},
		{
			name:   "absolute scroll replaces pending scroll",
			pushes: []Event{ScrollBy(5), ScrollTo(40), ScrollTo(90)},
			want:   []Event{ScrollTo(90)},
		},
		{
			name:   "relative scrolls of one sign are summed",
			pushes: []Event{ScrollBy(30), ScrollBy(30), ScrollBy(15)},
			want:   []Event{ScrollBy(75)},
		},
		{
			name:   "relative scrolls of mixed sign stay apart",
			pushes: []Event{ScrollBy(30), ScrollBy(-30)},
			want:   []Event{ScrollBy(30), ScrollBy(-30)},
		},
		{
			name:   "relative after absolute stays apart",
			pushes: []Event{ScrollTo(100), ScrollBy(-30)},
			want:   []Event{ScrollTo(100), ScrollBy(-30)},
		},
		{
			name:   "other types break a run",
			pushes: []Event{PointerAt(0.1, 0), PointerLeft(), PointerAt(0.2, 0), Resized(10, 10), PointerAt(0.5, 0)},
			want:   []Event{PointerAt(0.1, 0), PointerLeft(), PointerAt(0.2, 0), Resized(10, 10), PointerAt(0.5, 0)},
		},
		{
			name:   "pointer leaves are not merged",
			pushes: []Event{PointerLeft(), PointerLeft()},
			want:   []Event{PointerLeft(), PointerLeft()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			for _, ev := range tt.pushes {
				q.Push(ev)
			}
			assert.Equal(t, tt.want, q.Consume())

			merged, _ := q.Stats()
			assert.Equal(t, uint64(len(tt.pushes)-len(tt.want)), merged)
		})
	}
}

func TestDispatchRunsOnePointerHandlerPerFrame(t *testing.T) {
	r := NewRouter()
	var seen []Event
	r.Subscribe(PointerMove, func(ev Event) { seen = append(seen, ev) })

	for i := 1; i <= 20; i++ {
		r.Push(PointerAt(float64(i)/20, 0))
	}
	assert.Equal(t, 1, r.DispatchAll())
	require.Len(t, seen, 1)
	assert.Equal(t, 1.0, seen[0].X)

	merged, dropped := r.QueueStats()
	assert.Equal(t, uint64(19), merged)
	assert.Zero(t, dropped)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(ScrollBy(1))
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, Scroll, events[0].Type)
	assert.True(t, events[0].Delta)
	assert.Equal(t, 200.0, events[0].Y)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "pointer-move", PointerMove.String())
	assert.Equal(t, "unknown", Type(0).String())
}

package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// trafficLight is the shared data the states operate on.
type trafficLight struct {
	color     string
	ticks     int
	initCount map[string]int
	deinits   map[string]int
}

func newTrafficLight() *trafficLight {
	return &trafficLight{
		initCount: map[string]int{},
		deinits:   map[string]int{},
	}
}

type phase struct {
	name     string
	duration int
	next     *phase
}

func (p *phase) Init(data *trafficLight) {
	data.color = p.name
	data.ticks = 0
	data.initCount[p.name]++
}

func (p *phase) Process(data *trafficLight) State[trafficLight] {
	data.ticks++
	if data.ticks >= p.duration {
		return p.next
	}
	return p
}

func (p *phase) Deinit(data *trafficLight) {
	data.deinits[p.name]++
}

func buildPhases() (red, green *phase) {
	red = &phase{name: "red", duration: 2}
	green = &phase{name: "green", duration: 3}
	red.next = green
	green.next = red
	return red, green
}

func TestMachineTransitions(t *testing.T) {
	red, _ := buildPhases()
	data := newTrafficLight()
	m := New[trafficLight](red)

	// First step enters the start state.
	m.Process(data)
	assert.Equal(t, "red", data.color)
	assert.Equal(t, 1, data.initCount["red"])

	// red runs for 2 ticks, then green for 3, then red again.
	m.Process(data) // red tick 2, transition pending
	m.Process(data) // enter green, tick 1
	assert.Equal(t, "green", data.color)
	assert.Equal(t, 1, data.deinits["red"])
	assert.Equal(t, 1, data.initCount["green"])

	m.Process(data)
	m.Process(data)
	m.Process(data) // back to red
	assert.Equal(t, "red", data.color)
	assert.Equal(t, 1, data.deinits["green"])
	assert.Equal(t, 2, data.initCount["red"])
}

// Init and Deinit fire exactly once per stay, never per Process call.
func TestMachineInitOncePerStay(t *testing.T) {
	red, _ := buildPhases()
	data := newTrafficLight()
	m := New[trafficLight](red)

	for i := 0; i < 10; i++ {
		m.Process(data)
	}
	assert.Equal(t, data.initCount["red"]+data.initCount["green"],
		data.deinits["red"]+data.deinits["green"]+1,
		"every entered state except the current one has been deinitialized")
}

func TestMachineReset(t *testing.T) {
	red, green := buildPhases()
	data := newTrafficLight()
	m := New[trafficLight](red)

	m.Process(data) // entered red
	m.Reset(data, green)
	assert.Equal(t, 1, data.deinits["red"], "entered state is deinitialized on reset")

	m.Process(data)
	assert.Equal(t, "green", data.color)
	assert.Equal(t, 1, data.initCount["green"])
}

func TestMachineResetBeforeEntry(t *testing.T) {
	red, green := buildPhases()
	data := newTrafficLight()
	m := New[trafficLight](red)

	// Never processed: no state was entered, so nothing to deinitialize.
	m.Reset(data, green)
	assert.Empty(t, data.deinits)
	assert.Empty(t, data.initCount)

	m.Process(data)
	assert.Equal(t, "green", data.color)
}

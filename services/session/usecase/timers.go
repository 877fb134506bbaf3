package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/piresc/lleva/internal/pkg/simulation"
)

const (
	timerAssignment = "assignment"
	timerProgress   = "progress"
	timerChatPrefix = "chat:"
)

// timerArena holds the named timers of one session. It is only touched
// while the owning controller's mutex is held.
type timerArena struct {
	clock  simulation.Clock
	timers map[string]simulation.Timer
}

func newTimerArena(clock simulation.Clock) *timerArena {
	return &timerArena{clock: clock, timers: make(map[string]simulation.Timer)}
}

// arm schedules fn after d, replacing any timer already under name
func (a *timerArena) arm(name string, d time.Duration, fn func()) {
	a.cancel(name)
	a.timers[name] = a.clock.AfterFunc(d, fn)
}

func (a *timerArena) cancel(name string) {
	if t, ok := a.timers[name]; ok {
		t.Stop()
		delete(a.timers, name)
	}
}

// forget drops a timer that already fired
func (a *timerArena) forget(name string) {
	delete(a.timers, name)
}

func (a *timerArena) cancelPrefix(prefix string) {
	for name := range a.timers {
		if strings.HasPrefix(name, prefix) {
			a.cancel(name)
		}
	}
}

func (a *timerArena) cancelAll() {
	for name := range a.timers {
		a.cancel(name)
	}
}

func (a *timerArena) names() []string {
	names := make([]string, 0, len(a.timers))
	for name := range a.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

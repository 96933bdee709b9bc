package pet

// TickEvents flags what changed during a tick
type TickEvents uint8

const (
	HungerRose TickEvents = 1 << iota
	HappinessFell
	MarkerChanged
)

// Has reports whether all flags in e are set
func (t TickEvents) Has(e TickEvents) bool {
	return t&e == e
}

// Tick advances simulated time by one tick
// Hunger and happiness only report a change when the value actually moved
func (s *State) Tick() TickEvents {
	var ev TickEvents
	s.Ticks++

	if s.Ticks%HungerPeriod == 0 && s.Hunger < MaxStat {
		s.Hunger++
		ev |= HungerRose
	}

	if s.Ticks%HappinessPeriod == 0 && s.Happiness > MinStat {
		s.Happiness--
		ev |= HappinessFell
	}

	if s.Ticks%MarkerPeriod == 0 {
		s.Marker = s.Marker.Next()
		ev |= MarkerChanged
	}

	s.moveBy(Drift.X, Drift.Y)
	return ev
}

// Advance runs n ticks and returns the union of their events
func (s *State) Advance(n int) TickEvents {
	var ev TickEvents
	for i := 0; i < n; i++ {
		ev |= s.Tick()
	}
	return ev
}

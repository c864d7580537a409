package solver

// ListenerStats is the snapshot handed to listener callbacks.
type ListenerStats struct {
	Popped     int
	Queue      int
	Visited    int
	Depth      int    // largest leaf count popped so far
	BestDist   int    // distance of the best state, 0 when exact
	Best       string // rendering of the best state, "" while unset
	TimeMs     int
	Sps        uint32 // popped states per second
	StopReason StopReason
}

// Listener function callback, receives current search statistics
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called when the best-so-far state improves
	onBest ListenerFunc

	// called every N popped states
	onCycle ListenerFunc
	nCycles int // call 'onCycle' every N pops

	// called when the search stops (for whatever reason)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach a callback for best-so-far improvements, called by the search
// thread itself, so no synchronization is needed
func (listener *StatsListener) OnBest(onBest ListenerFunc) *StatsListener {
	listener.onBest = onBest
	return listener
}

// Attach a callback invoked every N popped states, see SetCycleInterval
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, called once,
// makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

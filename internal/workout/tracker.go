package workout

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
	StatePaused State = "paused"
)

// Options configures one Tracker. Zero values fall back to the production
// tick source (1 Hz wall clock).
type Options struct {
	TickInterval time.Duration
	Now          func() time.Time
	// OnTick receives a metrics snapshot after every tick, outside the
	// tracker lock.
	OnTick func(Snapshot)
}

// Tracker runs one workout session through Idle -> Active <-> Paused ->
// Completed. The tick loop and location ingest are independent event
// sources; a single mutex serializes them against the session counters.
type Tracker struct {
	mu   sync.Mutex
	opts Options

	state     State
	session   Session
	elapsed   time.Duration
	distanceM float64
	prev      *LocationSample
	lastRoute *LocationSample
	stop      chan struct{}
}

func NewTracker(opts Options) *Tracker {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Tracker{opts: opts, state: StateIdle}
}

// Start begins a new session. No-op when a session is already running.
func (t *Tracker) Start(userID string, typ Type) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle {
		return t.session, false
	}

	t.session = Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		StartedAt: t.opts.Now(),
	}
	t.elapsed = 0
	t.distanceM = 0
	t.prev = nil
	t.lastRoute = nil
	t.state = StateActive
	t.startLoopLocked()
	return t.session, true
}

// Pause stops the tick loop and sample intake, keeping accumulated state.
func (t *Tracker) Pause() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateActive {
		return false
	}
	t.stopLoopLocked()
	t.state = StatePaused
	return true
}

// Resume restarts the tick loop without resetting counters.
func (t *Tracker) Resume() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StatePaused {
		return false
	}
	t.state = StateActive
	t.startLoopLocked()
	return true
}

// End freezes the session, classifies it, and returns the completed record.
// The tracker drops back to Idle. No-op when no session is running.
// Heart rates are optional; zero means not reported.
func (t *Tracker) End(avgHeartRate, maxHeartRate int) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateIdle {
		return Session{}, false
	}
	t.stopLoopLocked()

	done := t.session
	done.EndedAt = t.opts.Now()
	done.DurationSeconds = int(t.elapsed.Seconds())
	done.DistanceM = t.distanceM
	done.Calories = int(t.elapsed.Minutes() * caloriesPerMinute(done.Type))
	done.AvgHeartRate = avgHeartRate
	done.MaxHeartRate = maxHeartRate
	done.Category = Classify(t.elapsed, t.distanceM)
	done.IsCompleted = true

	t.session = Session{}
	t.elapsed = 0
	t.distanceM = 0
	t.prev = nil
	t.lastRoute = nil
	t.state = StateIdle
	return done, true
}

// Ingest feeds one raw location fix through the filter. Samples arriving
// while paused or idle are dropped. Returns whether the sample was accepted
// and the metrics snapshot after processing.
func (t *Tracker) Ingest(sample LocationSample) (bool, Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateActive {
		return false, t.snapshotLocked()
	}

	d := EvaluateSample(t.prev, t.lastRoute, sample, len(t.session.Route))
	if !d.Accept {
		return false, t.snapshotLocked()
	}

	t.distanceM += distanceIncrement(t.prev, sample)
	s := sample
	t.prev = &s
	if d.AddToRoute {
		t.session.Route = append(t.session.Route, RoutePoint{Lat: s.Latitude, Lng: s.Longitude})
		t.lastRoute = &s
	}
	return true, t.snapshotLocked()
}

// Tick advances elapsed time by one interval. Called by the internal loop;
// exported so the engine can be driven without a wall clock.
func (t *Tracker) Tick() {
	t.mu.Lock()
	if t.state != StateActive {
		t.mu.Unlock()
		return
	}
	t.elapsed += t.opts.TickInterval
	snap := t.snapshotLocked()
	onTick := t.opts.OnTick
	t.mu.Unlock()

	if onTick != nil {
		onTick(snap)
	}
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) startLoopLocked() {
	stop := make(chan struct{})
	t.stop = stop
	go t.loop(stop)
}

func (t *Tracker) stopLoopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Tracker) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(t.opts.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.Tick()
		case <-stop:
			return
		}
	}
}

func (t *Tracker) snapshotLocked() Snapshot {
	elapsedSec := t.elapsed.Seconds()
	pace, hasPace := paceSecPerKm(elapsedSec, t.distanceM)
	return Snapshot{
		SessionID:       t.session.ID,
		State:           t.state,
		Type:            t.session.Type,
		ElapsedSeconds:  int(elapsedSec),
		DistanceM:       t.distanceM,
		Calories:        int(t.elapsed.Minutes() * caloriesPerMinute(t.session.Type)),
		PaceSecPerKm:    pace,
		AvgPaceSecPerKm: pace,
		HasPace:         hasPace,
		RoutePoints:     len(t.session.Route),
	}
}

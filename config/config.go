// Package config holds the validated runtime configuration and its persisted options
package config

import (
	"sort"
	"time"
)

// Rate limits and defaults
const (
	MinUpdatesPerSecond     = 30
	MaxUpdatesPerSecond     = 360
	DefaultUpdatesPerSecond = 120

	MinFramesPerSecond     = 10
	MaxFramesPerSecond     = 360
	DefaultFramesPerSecond = 60

	DefaultLanguage = "English"
)

// Languages lists the selectable interface languages in cycle order
var Languages = []string{"English", "Deutsch", "Français", "Español", "Italiano", "Polski", "Русский"}

// Field identifies a configuration value in change notifications
type Field uint8

const (
	FieldUpdatesPerSecond Field = iota
	FieldFramesPerSecond
	FieldUncappedUpdatesPerSecond
	FieldHybridSleep
	FieldFullScreen
	FieldLanguage
	FieldSounds
	FieldBindings
)

var fieldNames = [...]string{
	FieldUpdatesPerSecond:         "updates per second",
	FieldFramesPerSecond:          "frames per second",
	FieldUncappedUpdatesPerSecond: "uncapped updates",
	FieldHybridSleep:              "hybrid sleep",
	FieldFullScreen:               "full screen",
	FieldLanguage:                 "language",
	FieldSounds:                   "sounds",
	FieldBindings:                 "bindings",
}

// String returns a readable field name
func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Change describes one applied mutation
// Restart is set when the change only takes effect after subsystems are rebuilt
type Change struct {
	Field   Field
	Restart bool
}

// Config is the validated configuration object
// Owned by the loop goroutine; watchers run synchronously inside setters
type Config struct {
	updatesPerSecond int
	framesPerSecond  int
	uncappedUpdates  bool
	hybridSleep      bool
	fullScreen       bool
	language         string
	sounds           bool

	// Derived, re-derived on every rate mutation
	updateToFrameRatio float64
	targetFrameTime    time.Duration

	watchers    map[int]func(Change)
	nextWatchID int
	options     []Option
}

// New creates a configuration with defaults and its scalar options registered
func New() *Config {
	c := &Config{}
	c.setDefaults()
	c.registerScalarOptions()
	return c
}

func (c *Config) setDefaults() {
	c.updatesPerSecond = DefaultUpdatesPerSecond
	c.framesPerSecond = DefaultFramesPerSecond
	c.uncappedUpdates = false
	c.hybridSleep = false
	c.fullScreen = false
	c.language = DefaultLanguage
	c.sounds = true
	c.derive()
}

// UpdatesPerSecond returns the simulation rate
func (c *Config) UpdatesPerSecond() int { return c.updatesPerSecond }

// FramesPerSecond returns the render rate
func (c *Config) FramesPerSecond() int { return c.framesPerSecond }

// UncappedUpdatesPerSecond reports whether pacing is disabled
func (c *Config) UncappedUpdatesPerSecond() bool { return c.uncappedUpdates }

// HybridSleep reports whether the pacer runs in hybrid mode
func (c *Config) HybridSleep() bool { return c.hybridSleep }

// FullScreen reports the window mode
func (c *Config) FullScreen() bool { return c.fullScreen }

// Language returns the interface language
func (c *Config) Language() string { return c.language }

// Sounds reports whether sound effects are enabled
func (c *Config) Sounds() bool { return c.sounds }

// UpdateToFrameRatio returns UPS/FPS
func (c *Config) UpdateToFrameRatio() float64 { return c.updateToFrameRatio }

// TargetFrameTime returns the duration of one simulation step
func (c *Config) TargetFrameTime() time.Duration { return c.targetFrameTime }

// SetUpdatesPerSecond clamps n to the UPS range and lowers FPS when it would exceed it
func (c *Config) SetUpdatesPerSecond(n int) {
	n = clamp(n, MinUpdatesPerSecond, MaxUpdatesPerSecond)
	fpsChanged := false
	if c.framesPerSecond > n {
		c.framesPerSecond = clamp(n, MinFramesPerSecond, MaxFramesPerSecond)
		fpsChanged = true
	}
	upsChanged := n != c.updatesPerSecond
	c.updatesPerSecond = n
	c.derive()

	if upsChanged {
		c.notify(Change{Field: FieldUpdatesPerSecond})
	}
	if fpsChanged {
		c.notify(Change{Field: FieldFramesPerSecond})
	}
}

// SetFramesPerSecond clamps n to the FPS range and raises UPS when it would fall below it
func (c *Config) SetFramesPerSecond(n int) {
	n = clamp(n, MinFramesPerSecond, MaxFramesPerSecond)
	upsChanged := false
	if c.updatesPerSecond < n {
		c.updatesPerSecond = clamp(n, MinUpdatesPerSecond, MaxUpdatesPerSecond)
		upsChanged = true
	}
	fpsChanged := n != c.framesPerSecond
	c.framesPerSecond = n
	c.derive()

	if fpsChanged {
		c.notify(Change{Field: FieldFramesPerSecond})
	}
	if upsChanged {
		c.notify(Change{Field: FieldUpdatesPerSecond})
	}
}

// SetUncappedUpdatesPerSecond enables or disables pacing
func (c *Config) SetUncappedUpdatesPerSecond(v bool) {
	if c.uncappedUpdates == v {
		return
	}
	c.uncappedUpdates = v
	c.notify(Change{Field: FieldUncappedUpdatesPerSecond})
}

// SetHybridSleep switches the pacer mode
func (c *Config) SetHybridSleep(v bool) {
	if c.hybridSleep == v {
		return
	}
	c.hybridSleep = v
	c.notify(Change{Field: FieldHybridSleep})
}

// SetFullScreen changes the window mode; takes effect on restart
func (c *Config) SetFullScreen(v bool) {
	if c.fullScreen == v {
		return
	}
	c.fullScreen = v
	c.notify(Change{Field: FieldFullScreen, Restart: true})
}

// SetLanguage changes the interface language; takes effect on restart
// Empty names are ignored
func (c *Config) SetLanguage(s string) {
	if s == "" || s == c.language {
		return
	}
	c.language = s
	c.notify(Change{Field: FieldLanguage, Restart: true})
}

// NextLanguage returns the language following the current one in Languages
func (c *Config) NextLanguage() string {
	for i, l := range Languages {
		if l == c.language {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}

// SetSounds enables or disables sound effects
func (c *Config) SetSounds(v bool) {
	if c.sounds == v {
		return
	}
	c.sounds = v
	c.notify(Change{Field: FieldSounds})
}

// Validate clamps FPS, then UPS, then raises UPS to at least FPS
// Returns true if any value was corrected; calling twice is a no-op the second time
func (c *Config) Validate() bool {
	fps := clamp(c.framesPerSecond, MinFramesPerSecond, MaxFramesPerSecond)
	ups := clamp(c.updatesPerSecond, MinUpdatesPerSecond, MaxUpdatesPerSecond)
	ups = max(ups, fps)

	changed := fps != c.framesPerSecond || ups != c.updatesPerSecond
	c.framesPerSecond = fps
	c.updatesPerSecond = ups
	if c.language == "" {
		c.language = DefaultLanguage
		changed = true
	}
	c.derive()
	return changed
}

// Watch registers fn to receive every applied change
// The returned function removes the registration
func (c *Config) Watch(fn func(Change)) (cancel func()) {
	if c.watchers == nil {
		c.watchers = make(map[int]func(Change))
	}
	id := c.nextWatchID
	c.nextWatchID++
	c.watchers[id] = fn

	return func() {
		delete(c.watchers, id)
	}
}

// Watchers returns the number of active registrations
func (c *Config) Watchers() int {
	return len(c.watchers)
}

// NotifyBindings announces an input binding mutation to watchers
func (c *Config) NotifyBindings() {
	c.notify(Change{Field: FieldBindings})
}

// notify calls watchers in registration order
func (c *Config) notify(ch Change) {
	if len(c.watchers) == 0 {
		return
	}
	ids := make([]int, 0, len(c.watchers))
	for id := range c.watchers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := c.watchers[id]; ok {
			fn(ch)
		}
	}
}

func (c *Config) derive() {
	c.updateToFrameRatio = float64(c.updatesPerSecond) / float64(c.framesPerSecond)
	c.targetFrameTime = time.Second / time.Duration(c.updatesPerSecond)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

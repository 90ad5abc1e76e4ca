package config

import (
	"github.com/lixenwraith/cadet/settings"
)

// Persisted option keys
const (
	KeyUpdatesPerSecond         = "Updates Per Second"
	KeyFramesPerSecond          = "Frames Per Second"
	KeyUncappedUpdatesPerSecond = "Uncapped Updates Per Second"
	KeyHybridSleep              = "HybridSleep"
	KeyFullScreen               = "FullScreen"
	KeyLanguage                 = "Language"
	KeySounds                   = "Sounds"
)

// Option is one persisted configuration entry
// Load writes raw values; cross-field correction happens in Config.Load via Validate
type Option interface {
	Name() string
	Load(s settings.Store)
	Save(s settings.Store)
	Reset()
}

// Register appends options to the ordered collection
func (c *Config) Register(opts ...Option) {
	c.options = append(c.options, opts...)
}

// Options returns the registered options in registration order
func (c *Config) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// Load reads every option in registration order, then validates
// Watchers receive one change per scalar field that differs afterwards
func (c *Config) Load(s settings.Store) {
	before := c.scalars()
	for _, opt := range c.options {
		opt.Load(s)
	}
	c.Validate()
	c.notifyDiff(before)
}

// Save writes every option in registration order
func (c *Config) Save(s settings.Store) {
	for _, opt := range c.options {
		opt.Save(s)
	}
}

// ResetAll restores every option to its default, then validates
// Watchers receive one change per scalar field that differs afterwards
func (c *Config) ResetAll() {
	before := c.scalars()
	for _, opt := range c.options {
		opt.Reset()
	}
	c.Validate()
	c.notifyDiff(before)
}

// scalarValues captures the scalar fields for change detection
type scalarValues struct {
	updatesPerSecond int
	framesPerSecond  int
	uncappedUpdates  bool
	hybridSleep      bool
	fullScreen       bool
	language         string
	sounds           bool
}

func (c *Config) scalars() scalarValues {
	return scalarValues{
		updatesPerSecond: c.updatesPerSecond,
		framesPerSecond:  c.framesPerSecond,
		uncappedUpdates:  c.uncappedUpdates,
		hybridSleep:      c.hybridSleep,
		fullScreen:       c.fullScreen,
		language:         c.language,
		sounds:           c.sounds,
	}
}

// notifyDiff announces every field that differs from before, in Field order
func (c *Config) notifyDiff(before scalarValues) {
	now := c.scalars()
	if now.updatesPerSecond != before.updatesPerSecond {
		c.notify(Change{Field: FieldUpdatesPerSecond})
	}
	if now.framesPerSecond != before.framesPerSecond {
		c.notify(Change{Field: FieldFramesPerSecond})
	}
	if now.uncappedUpdates != before.uncappedUpdates {
		c.notify(Change{Field: FieldUncappedUpdatesPerSecond})
	}
	if now.hybridSleep != before.hybridSleep {
		c.notify(Change{Field: FieldHybridSleep})
	}
	if now.fullScreen != before.fullScreen {
		c.notify(Change{Field: FieldFullScreen, Restart: true})
	}
	if now.language != before.language {
		c.notify(Change{Field: FieldLanguage, Restart: true})
	}
	if now.sounds != before.sounds {
		c.notify(Change{Field: FieldSounds})
	}
}

type intOption struct {
	name  string
	value *int
	def   int
}

func (o *intOption) Name() string          { return o.name }
func (o *intOption) Load(s settings.Store) { *o.value = settings.GetInt(s, o.name, o.def) }
func (o *intOption) Save(s settings.Store) { settings.SetInt(s, o.name, *o.value) }
func (o *intOption) Reset()                { *o.value = o.def }

type boolOption struct {
	name  string
	value *bool
	def   bool
}

func (o *boolOption) Name() string          { return o.name }
func (o *boolOption) Load(s settings.Store) { *o.value = settings.GetBool(s, o.name, o.def) }
func (o *boolOption) Save(s settings.Store) { settings.SetBool(s, o.name, *o.value) }
func (o *boolOption) Reset()                { *o.value = o.def }

type stringOption struct {
	name  string
	value *string
	def   string
}

func (o *stringOption) Name() string          { return o.name }
func (o *stringOption) Load(s settings.Store) { *o.value = s.GetSetting(o.name, o.def) }
func (o *stringOption) Save(s settings.Store) { s.SetSetting(o.name, *o.value) }
func (o *stringOption) Reset()                { *o.value = o.def }

func (c *Config) registerScalarOptions() {
	c.Register(
		&intOption{name: KeyUpdatesPerSecond, value: &c.updatesPerSecond, def: DefaultUpdatesPerSecond},
		&intOption{name: KeyFramesPerSecond, value: &c.framesPerSecond, def: DefaultFramesPerSecond},
		&boolOption{name: KeyUncappedUpdatesPerSecond, value: &c.uncappedUpdates, def: false},
		&boolOption{name: KeyHybridSleep, value: &c.hybridSleep, def: false},
		&boolOption{name: KeyFullScreen, value: &c.fullScreen, def: false},
		&stringOption{name: KeyLanguage, value: &c.language, def: DefaultLanguage},
		&boolOption{name: KeySounds, value: &c.sounds, def: true},
	)
}

package interact

// Limits are the fixed capacities of every registry in a Context.
// They are set once at construction; nothing grows afterwards.
type Limits struct {
	MaxBlockingRegions int // Regions per frame buffer
	MaxLayerDepth      int // Nested PushLayer calls
	MaxFocusables      int // Focusable widgets per frame
	FieldTableSize     int // Slots per field-presence table (power of two)
}

// DefaultLimits returns the capacities used when no option overrides them.
func DefaultLimits() Limits {
	return Limits{
		MaxBlockingRegions: 64,
		MaxLayerDepth:      16,
		MaxFocusables:      256,
		FieldTableSize:     256,
	}
}

type config struct {
	limits        Limits
	tabNavigation bool
}

func defaultConfig() config {
	return config{
		limits:        DefaultLimits(),
		tabNavigation: true,
	}
}

// Option configures a Context.
type Option func(*config)

// WithMaxBlockingRegions sets how many blocking regions one frame may register.
func WithMaxBlockingRegions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limits.MaxBlockingRegions = n
		}
	}
}

// WithMaxLayerDepth sets how deep PushLayer calls may nest.
func WithMaxLayerDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limits.MaxLayerDepth = n
		}
	}
}

// WithMaxFocusables sets how many focusable widgets one frame may register.
func WithMaxFocusables(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limits.MaxFocusables = n
		}
	}
}

// WithFieldTableSize sets the slot count of the text-field and slider
// presence tables. The value is rounded up to a power of two.
func WithFieldTableSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limits.FieldTableSize = nextPow2(n)
		}
	}
}

// WithTabNavigation controls whether BeginFrame turns Tab / Shift+Tab
// presses into FocusNext / FocusPrev requests.
func WithTabNavigation(enabled bool) Option {
	return func(c *config) { c.tabNavigation = enabled }
}

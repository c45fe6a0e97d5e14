package pipeline

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLaunchGraceTicks is how many probes are ignored after a forced ungrounding.
const DefaultLaunchGraceTicks = 1

type options struct {
	id               string
	up               mgl64.Vec3
	debug            bool
	logger           *log.Logger
	launchGraceTicks int
}

// Option configures a Pipeline.
type Option func(*options)

// WithID sets the entity id carried by events and debug logs.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithUp sets the up axis. A zero vector keeps the default +Y.
func WithUp(up mgl64.Vec3) Option {
	return func(o *options) { o.up = up }
}

// WithDebug enables per-tick debug logging.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithLogger routes setup errors and debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLaunchGraceTicks sets how many ground probes are ignored after
// ForceUngrounded, so a launch is not cancelled by a stale hit.
func WithLaunchGraceTicks(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.launchGraceTicks = n
		}
	}
}

package spyder

import "github.com/desh2608/spyder/timeline"

// RegionFilter selects which class of reference regions to score. It is a
// re-export of timeline.Kind so callers never need to import the timeline
// package directly just to name a filter.
type RegionFilter = timeline.Kind

// Region filter constants, re-exported from package timeline.
const (
	All        = timeline.All
	Single     = timeline.Single
	Overlap    = timeline.Overlap
	NonOverlap = timeline.NonOverlap
)

// ParseRegionFilter maps a region-filter name (as accepted by the --regions
// CLI flag) to a RegionFilter. Unknown names return ok=false so the caller
// can surface ErrInvalidArgument with its own context.
func ParseRegionFilter(name string) (RegionFilter, bool) {
	return timeline.ParseKind(name)
}

// Option customizes a ComputeDER call. Later options override earlier ones.
type Option func(*config)

type config struct {
	uem     *timeline.UEM
	regions RegionFilter
	collar  float64
}

func newConfig(opts ...Option) *config {
	cfg := &config{regions: All, collar: 0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithUEM restricts scoring to u. If omitted, ComputeDER synthesizes a UEM
// spanning the union of ref and hyp.
func WithUEM(u timeline.UEM) Option {
	return func(c *config) { c.uem = &u }
}

// WithRegions selects the region class to score. Default is All.
func WithRegions(r RegionFilter) Option {
	return func(c *config) { c.regions = r }
}

// WithCollar sets the boundary-forgiveness collar in seconds. Default is 0.
// A negative value is accepted here (functional options never validate or
// panic); it is rejected with ErrInvalidArgument inside ComputeDER, where
// errors are
// actually returned.
func WithCollar(seconds float64) Option {
	return func(c *config) { c.collar = seconds }
}

package bench

import "fmt"

// Access selects which structure answers a query in Harness.Run.
type Access string

const (
	AccessPrimary     Access = "primary"
	AccessSecondary   Access = "secondary"
	AccessBaseline    Access = "baseline"
	AccessCorrelation Access = "correlation"
)

// QueryType selects point or range queries.
type QueryType string

const (
	QueryPoint QueryType = "point"
	QueryRange QueryType = "range"
)

// Options configures one Harness.Run call.
type Options struct {
	Access Access
	Query  QueryType
	// QueryCount is how many queries Run issues.
	QueryCount int
	// Selectivity, in (0,1], is the fraction of the queried column's value
	// domain a single range query spans (primary key, host, or guest,
	// depending on Access). Ignored for QueryPoint.
	Selectivity float64
}

// DefaultOptions returns Options matching the original harness's usual
// invocation: correlation access, point queries, 1000 queries.
func DefaultOptions() Options {
	return Options{
		Access:      AccessCorrelation,
		Query:       QueryPoint,
		QueryCount:  1000,
		Selectivity: 0.01,
	}
}

// Option customizes Options produced by NewOptions.
type Option func(*Options)

func WithAccess(a Access) Option           { return func(o *Options) { o.Access = a } }
func WithQuery(q QueryType) Option         { return func(o *Options) { o.Query = q } }
func WithQueryCount(n int) Option          { return func(o *Options) { o.QueryCount = n } }
func WithSelectivity(s float64) Option     { return func(o *Options) { o.Selectivity = s } }

// NewOptions returns DefaultOptions with each opt applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate reports a configuration error for any out-of-range field.
func (o Options) Validate() error {
	switch o.Access {
	case AccessPrimary, AccessSecondary, AccessBaseline, AccessCorrelation:
	default:
		return fmt.Errorf("Validate: access=%q: %w", o.Access, ErrInvalidAccess)
	}
	switch o.Query {
	case QueryPoint, QueryRange:
	default:
		return fmt.Errorf("Validate: query=%q: %w", o.Query, ErrInvalidQueryType)
	}
	if o.QueryCount < 1 {
		return fmt.Errorf("Validate: query_count=%d: %w", o.QueryCount, ErrInvalidQueryCount)
	}
	if o.Query == QueryRange && (o.Selectivity <= 0 || o.Selectivity > 1) {
		return fmt.Errorf("Validate: selectivity=%v: %w", o.Selectivity, ErrInvalidSelectivity)
	}
	return nil
}

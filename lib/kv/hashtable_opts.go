package kv

import (
	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/xlog"
)

type hashtableCfg[K any] struct {
	hash           HashFunc[K]
	cmp            infra.Comparator[K]
	upperTol       int64
	lowerTol       int64
	logger         xlog.XLogger
	statsName      string
	isStatsEnabled bool
}

type HashtableOption[K any] func(cfg *hashtableCfg[K]) error

// WithHashtableUpperTolerance sets the average chain length that
// triggers a grow. Defaults to 10.
func WithHashtableUpperTolerance[K any](tol int64) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if tol <= 0 {
			return infra.NewErrorStack("[hashtable] upper tolerance must be positive")
		}
		cfg.upperTol = tol
		return nil
	}
}

// WithHashtableLowerTolerance sets the average chain length below
// which the table shrinks. Defaults to 2.
func WithHashtableLowerTolerance[K any](tol int64) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if tol <= 0 {
			return infra.NewErrorStack("[hashtable] lower tolerance must be positive")
		}
		cfg.lowerTol = tol
		return nil
	}
}

func WithHashtableHasher[K any](hash HashFunc[K]) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if hash == nil {
			return infra.NewErrorStack("[hashtable] nil hasher")
		}
		cfg.hash = hash
		return nil
	}
}

func WithHashtableComparator[K any](cmp infra.Comparator[K]) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if cmp == nil {
			return infra.NewErrorStack("[hashtable] nil comparator")
		}
		cfg.cmp = cmp
		return nil
	}
}

func WithHashtableLogger[K any](logger xlog.XLogger) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if logger == nil {
			return infra.NewErrorStack("[hashtable] nil logger")
		}
		cfg.logger = logger
		return nil
	}
}

// WithHashtableStats enables the otel instruments under the meter
// HashtableStatsName/name.
func WithHashtableStats[K any](name string) HashtableOption[K] {
	return func(cfg *hashtableCfg[K]) error {
		if name == "" {
			return infra.NewErrorStack("[hashtable] empty stats name")
		}
		cfg.statsName = name
		cfg.isStatsEnabled = true
		return nil
	}
}

func newHashtableCfg[K any](
	hash HashFunc[K],
	cmp infra.Comparator[K],
	opts ...HashtableOption[K],
) (*hashtableCfg[K], error) {
	cfg := &hashtableCfg[K]{
		hash:     hash,
		cmp:      cmp,
		upperTol: defaultUpperTolerance,
		lowerTol: defaultLowerTolerance,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.hash == nil {
		return nil, infra.NewErrorStack("[hashtable] nil hasher")
	}
	if cfg.cmp == nil {
		return nil, infra.NewErrorStack("[hashtable] nil comparator")
	}
	if cfg.lowerTol >= cfg.upperTol {
		return nil, infra.NewErrorStack("[hashtable] lower tolerance must be less than upper tolerance")
	}
	if !tolerancesFit(cfg.upperTol, cfg.lowerTol) {
		return nil, infra.NewErrorStack("[hashtable] tolerances do not fit the capacity schedule")
	}
	if cfg.logger == nil {
		cfg.logger = xlog.NewNopXLogger()
	}
	cfg.logger = cfg.logger.Named("hashtable")
	return cfg, nil
}

package karatsuba

import (
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/jiajunxin/karatsuba/internal/logutil"
)

type config struct {
	strategy  Strategy
	digitBits uint
	cache     *ShiftCache
	noCache   bool
	logger    *zap.Logger
}

// Option configures an Evaluator.
type Option func(*config)

// WithStrategy selects the evaluation strategy. The default is Iterative.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithDigitBits sets the digit width of the split, 1 to 32 bits. The
// default is DefaultDigitBits.
func WithDigitBits(n uint) Option {
	return func(c *config) { c.digitBits = n }
}

// WithShiftCache shares cache with the Evaluator. By default every
// Evaluator owns a fresh cache.
func WithShiftCache(cache *ShiftCache) Option {
	return func(c *config) {
		c.cache = cache
		c.noCache = cache == nil
	}
}

// WithoutShiftCache makes the Evaluator compute shift amounts on every split.
func WithoutShiftCache() Option {
	return func(c *config) {
		c.cache = nil
		c.noCache = true
	}
}

// WithLogger sets the logger. By default the package logger is used, see
// SetLogger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// SetLogger replaces the package logger used by evaluators without their
// own logger. The package logger discards everything by default.
func SetLogger(l *zap.Logger) {
	logutil.SetLogger(l)
}

// An Evaluator multiplies non-negative integers with the Karatsuba
// algorithm. An Evaluator is safe for concurrent use.
type Evaluator struct {
	strategy Strategy
	splitter *Splitter
	logger   *zap.Logger
}

// NewEvaluator returns an Evaluator configured by opts.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	c := config{strategy: Iterative, digitBits: DefaultDigitBits}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.strategy.valid() {
		return nil, xerrors.Errorf("%v: %w", c.strategy, ErrStrategy)
	}
	if c.cache == nil && !c.noCache {
		c.cache = NewShiftCache()
	}
	s, err := NewSplitter(c.digitBits, c.cache)
	if err != nil {
		return nil, xerrors.Errorf("new evaluator: %w", err)
	}
	return &Evaluator{strategy: c.strategy, splitter: s, logger: c.logger}, nil
}

// Strategy returns the evaluation strategy of e.
func (e *Evaluator) Strategy() Strategy {
	return e.strategy
}

// Multiply returns a*b.
func (e *Evaluator) Multiply(a, b *big.Int) (*big.Int, error) {
	z, _, err := e.MultiplyStats(a, b)
	return z, err
}

// MultiplyStats returns a*b together with the shape of the recursion tree
// that computed it.
func (e *Evaluator) MultiplyStats(a, b *big.Int) (*big.Int, Stats, error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		e.log().Warn("reject negative operand",
			zap.Stringer("strategy", e.strategy),
			zap.Int("signA", a.Sign()),
			zap.Int("signB", b.Sign()))
		return nil, Stats{}, xerrors.Errorf("multiply: %w", ErrNegativeOperand)
	}
	z, st := e.multiply(newNat(a), newNat(b))
	return z.toInt(), st, nil
}

func (e *Evaluator) multiply(x, y nat) (nat, Stats) {
	st := Stats{Strategy: e.strategy}
	var z nat
	switch e.strategy {
	case Recursive:
		z = mulRecursive(e.splitter, x, y, 0, &st)
	case Iterative:
		z = mulIterative(e.splitter, x, y, &st)
	}

	if ce := e.log().Check(zap.DebugLevel, "karatsuba multiply"); ce != nil {
		ce.Write(
			zap.Stringer("strategy", e.strategy),
			zap.Uint("digitBits", e.splitter.digitBits),
			zap.Int("bitsA", x.bitLen()),
			zap.Int("bitsB", y.bitLen()),
			zap.Int("splits", st.Splits),
			zap.Int("leaves", st.Leaves),
			zap.Int("maxDepth", st.MaxDepth),
			zap.Int("maxPending", st.MaxPending))
	}
	return z, st
}

func (e *Evaluator) log() *zap.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logutil.BgLogger()
}

// sharedCache serves the package-level evaluators. Its entries depend only
// on the half-point digit count, so it is never cleared.
var sharedCache = NewShiftCache()

var (
	recursiveEvaluator = mustEvaluator(WithStrategy(Recursive), WithShiftCache(sharedCache))
	iterativeEvaluator = mustEvaluator(WithStrategy(Iterative), WithShiftCache(sharedCache))
)

func mustEvaluator(opts ...Option) *Evaluator {
	e, err := NewEvaluator(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// MultiplyRecursive returns a*b computed by recursive Karatsuba
// multiplication in base 2**16. It panics if a or b is negative.
func MultiplyRecursive(a, b *big.Int) *big.Int {
	z, _ := recursiveEvaluator.multiply(newNat(a), newNat(b))
	return z.toInt()
}

// MultiplyIterative returns a*b computed by the stack machine equivalent
// of MultiplyRecursive. The result is identical for every input; the call
// stack depth stays constant regardless of operand size. It panics if a or
// b is negative.
func MultiplyIterative(a, b *big.Int) *big.Int {
	z, _ := iterativeEvaluator.multiply(newNat(a), newNat(b))
	return z.toInt()
}

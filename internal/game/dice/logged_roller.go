package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged rolling.
// All composite rolls are logged at debug level with expression, draws, base, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source exposes the underlying randomness provider.
func (r *Roller) Source() Source {
	return r.src
}

// Random2 returns a value in [0, n); see the package-level Random2.
func (r *Roller) Random2(n int) int {
	v := Random2(r.src, n)
	r.logger.Debug("dice random2", zap.Int("bound", n), zap.Int("result", v))
	return v
}

// OneChanceIn reports true with probability 1/n.
func (r *Roller) OneChanceIn(n int) bool {
	v := OneChanceIn(r.src, n)
	r.logger.Debug("dice one_chance_in", zap.Int("n", n), zap.Bool("result", v))
	return v
}

// CoinFlip reports true with probability 1/2.
func (r *Roller) CoinFlip() bool {
	v := CoinFlip(r.src)
	r.logger.Debug("dice coinflip", zap.Bool("result", v))
	return v
}

// RollBounded evaluates base + rolls × random2(bound) and logs the result.
//
// Postcondition: result logged at debug level.
func (r *Roller) RollBounded(base, rolls, bound int) RollResult {
	result := RollBounded(r.src, base, rolls, bound)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

package dice

import "fmt"

// Random2 returns a value in [0, n). Non-positive bounds yield 0 rather than
// panicking, so a zero-power caller simply gets no bonus.
//
// Postcondition: 0 <= result < max(n, 1).
func Random2(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.Intn(n)
}

// OneChanceIn reports true with probability 1/n. n <= 1 is always true.
func OneChanceIn(src Source, n int) bool {
	if n <= 1 {
		return true
	}
	return src.Intn(n) == 0
}

// CoinFlip reports true with probability 1/2.
func CoinFlip(src Source) bool {
	return src.Intn(2) == 0
}

// RollBounded computes base + rolls × random2(bound) and records each draw.
//
// Precondition: rolls >= 0.
// Postcondition: base <= Total() <= base + rolls*max(bound-1, 0).
func RollBounded(src Source, base, rolls, bound int) RollResult {
	draws := make([]int, rolls)
	for i := range draws {
		draws[i] = Random2(src, bound)
	}
	return RollResult{
		Expression: fmt.Sprintf("%d+%dr%d", base, rolls, bound),
		Dice:       draws,
		Modifier:   base,
	}
}

package cyclecipher

import (
	"strings"
	"sync"
	"unicode"
)

var derived sync.Map

// Derive converts a code word into its numeric code. Every character whose
// lower case is an ASCII letter becomes three digits (interval, offset,
// shift); any other character adds nothing. Results are cached per word.
func Derive(word string) string {
	if v, ok := derived.Load(word); ok {
		return v.(string)
	}
	var sb strings.Builder
	for _, r := range word {
		// U+0130 lowers to "i" plus a combining dot, not a single letter
		if r == '\u0130' {
			continue
		}
		if r = unicode.ToLower(r); r < 'a' || r > 'z' {
			continue
		}
		step := letterStep(int(r-'a') + 1)
		sb.WriteByte(byte('0' + step.Interval))
		sb.WriteByte(byte('0' + step.Offset))
		sb.WriteByte(byte('0' + step.Shift))
	}
	actual, _ := derived.LoadOrStore(word, sb.String())
	return actual.(string)
}

// letterStep computes the rotation of the letter at alphabet position value
// (a=1 ... z=26). The interval is always in 2..5, the offset below the
// interval and the shift in 1..5.
func letterStep(value int) Step {
	interval := value
	for {
		if f := largestFactor(interval); f != 0 {
			interval = f
			break
		}
		if root := digitalRoot(interval); root >= 2 && root <= 5 {
			interval = root
			break
		}
		interval++
	}
	return Step{
		Interval: interval,
		Offset:   digitalRoot(value*digitalRoot(value)) % interval,
		Shift:    value%5 + 1,
	}
}

// largestFactor returns the first of 5, 4, 3, 2 dividing n, or 0.
func largestFactor(n int) int {
	for f := 5; f > 1; f-- {
		if n%f == 0 {
			return f
		}
	}
	return 0
}

func digitalRoot(n int) int {
	for n/10 != 0 {
		sum := 0
		for ; n > 0; n /= 10 {
			sum += n % 10
		}
		n = sum
	}
	return n
}

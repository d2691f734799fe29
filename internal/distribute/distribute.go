// Package distribute spreads payload positions across a carrier with a fixed
// stride. The stride is kept coprime with the carrier length so that a
// progression wrapping past the end never lands on a position twice.
package distribute

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrCapacity        = errors.New("data does not fit in carrier")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrIntervalTooHigh = errors.New("interval exceeds carrier length")
)

type Distribution struct {
	dataLen, carrierLen int
	interval, offset    int
}

// New validates and normalises the parameters of a distribution.
//
// Process:
//  1. A zero interval defaults to carrierLen / dataLen.
//  2. An interval sharing a factor with carrierLen is replaced by the nearest
//     coprime above it. Lower candidates are never used.
//  3. The corrected interval must not exceed carrierLen.
//  4. The offset is reduced modulo the interval.
func New(dataLen, carrierLen, interval, offset int) (*Distribution, error) {
	if carrierLen <= 0 || dataLen > carrierLen {
		return nil, fmt.Errorf("%w: data %d > carrier %d", ErrCapacity, dataLen, carrierLen)
	}
	if dataLen < 0 {
		return nil, fmt.Errorf("%w: negative data length %d", ErrCapacity, dataLen)
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
	}
	if interval == 0 {
		interval = 1
		if dataLen > 0 {
			interval = carrierLen / dataLen
		}
	}
	if gcd(interval, carrierLen) != 1 {
		_, interval = ClosestCoprimes(carrierLen, interval)
	}
	if interval > carrierLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrIntervalTooHigh, interval, carrierLen)
	}
	offset %= interval
	if offset < 0 {
		offset += interval
	}
	return &Distribution{
		dataLen:    dataLen,
		carrierLen: carrierLen,
		interval:   interval,
		offset:     offset,
	}, nil
}

// Interval returns the corrected stride.
func (d *Distribution) Interval() int { return d.interval }

// Offset returns the normalised starting offset.
func (d *Distribution) Offset() int { return d.offset }

// Len returns the number of positions in the sequence.
func (d *Distribution) Len() int { return d.dataLen }

// At returns the n-th carrier position.
func (d *Distribution) At(n int) int {
	return (n*d.interval + d.offset) % d.carrierLen
}

// All yields the positions in order. The sequence can be ranged over any
// number of times and always produces the same values.
func (d *Distribution) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := range d.dataLen {
			if !yield(d.At(n)) {
				return
			}
		}
	}
}

// Indices materialises All.
func (d *Distribution) Indices() []int {
	out := make([]int, 0, d.dataLen)
	for i := range d.All() {
		out = append(out, i)
	}
	return out
}

// ClosestCoprimes returns the nearest integers strictly below and strictly
// above start that are coprime with divisor.
func ClosestCoprimes(divisor, start int) (lower, higher int) {
	lower, higher = start, start
	for {
		higher++
		if gcd(higher, divisor) == 1 {
			break
		}
	}
	for {
		lower--
		if gcd(lower, divisor) == 1 {
			break
		}
	}
	return lower, higher
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

package bench

import (
	"fmt"
	"testing"

	"github.com/yyyoichi/stegano/internal/distribute"
)

func BenchmarkDistribute(b *testing.B) {
	for _, size := range [][2]int{{1280, 720}, {1920, 1080}, {3840, 2160}} {
		carrierLen := size[0] * size[1] * 3
		dataLen := carrierLen / 64
		b.Run(fmt.Sprintf("all_%dx%d", size[0], size[1]), func(b *testing.B) {
			for b.Loop() {
				d, err := distribute.New(dataLen, carrierLen, 0, 0)
				if err != nil {
					b.Fatal(err)
				}
				sum := 0
				for i := range d.All() {
					sum += i
				}
				_ = sum
			}
		})
		b.Run(fmt.Sprintf("coprime_%dx%d", size[0], size[1]), func(b *testing.B) {
			for b.Loop() {
				_, _ = distribute.ClosestCoprimes(carrierLen, 64)
			}
		})
	}
}

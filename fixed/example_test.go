package fixed_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixed/fixed"
)

func ExampleSin() {
	// 32 units = 45 degrees.
	s := fixed.Sin(32)
	c := fixed.Cos(32)
	fmt.Printf("sin=%.4f cos=%.4f\n", s.Float(), c.Float())

	// Output:
	// sin=0.7070 cos=0.6914
}

func ExampleAtan2() {
	a := fixed.Atan2(100, 100)
	fmt.Printf("%d units = %.2f degrees\n", a, a.Degrees())

	// Output:
	// 32 units = 45.00 degrees
}

func ExampleSqrt() {
	fmt.Println(fixed.Sqrt(65535))
	fmt.Println(fixed.Sqrt(256))

	// Output:
	// 255
	// 16
}

func ExampleHypot() {
	// A 3-4-5 triangle in Q8.8: 3.0 and 4.0 give exactly 5.0.
	h := fixed.Hypot(3*fixed.One, 4*fixed.One)
	fmt.Printf("%.2f\n", h.Float())

	// Output:
	// 5.00
}

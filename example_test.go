package spinweighted_test

import (
	"fmt"

	"github.com/aretw0/spinweighted"
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

// Example_product shows that a product carries the sum of the operand spins.
func Example_product() {
	a := spinweighted.Filled[spin.P1, spinweighted.ComplexDataVector](3, complex(2, 0))
	b := spinweighted.Filled[spin.N2, spinweighted.ComplexDataVector](3, complex(0, 1))

	prod := spin.MulP1N2(a, b)
	fmt.Println(prod.Spin(), prod.Size(), prod.Data().At(0))
	// Output:
	// -1 3 (0+2i)
}

// Example_mixedStorage adds a real scalar to a complex vector of the same
// spin through a resolver.
func Example_mixedStorage() {
	v := spinweighted.New[spin.P2](spinweighted.ComplexVector(1, 2i))
	s := spinweighted.New[spin.P2](spinweighted.Real(3))

	sum := spin.AddWith(vector.ComplexVectorWithReal, v, s)
	fmt.Println(sum.Spin(), sum.Data().Values())
	// Output:
	// 2 [(4+0i) (3+2i)]
}

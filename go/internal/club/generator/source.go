package generator

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Source supplies uniform random integers. It is injected so tests can be
// deterministic while production draws from crypto/rand.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

// CryptoSource draws uniform values from crypto/rand. Player attributes carry
// in-game value, so a predictable or biased generator is not acceptable.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// there is no sane fallback.
		panic(fmt.Sprintf("generator: crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

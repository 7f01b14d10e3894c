package picker

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/feastfinder/internal/picker Picker

// Picker provides the randomness the app needs: sampling candidates and minting share codes
type Picker interface {
	// Pick returns k distinct indexes from [0, n) in random order (all of them if k >= n)
	Pick(n, k int) []int

	// Code returns a random share code
	Code() string
}

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultCodeLength is the length of generated share codes
	DefaultCodeLength = 6
)

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64

	// CodeLength overrides DefaultCodeLength
	CodeLength int
}

// Random implements Picker. math/rand.Rand is not safe for concurrent use,
// so every draw holds mu.
type Random struct {
	mu         sync.Mutex
	random     *rand.Rand
	codeLength int
}

// New creates a new random picker
func New(cfg *Config) *Random {
	var seed int64
	codeLength := DefaultCodeLength
	if cfg != nil {
		seed = cfg.Seed
		if cfg.CodeLength > 0 {
			codeLength = cfg.CodeLength
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random:     rand.New(rand.NewSource(seed)),
		codeLength: codeLength,
	}
}

// Pick samples k distinct indexes out of n
func (r *Random) Pick(n, k int) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if k > n {
		k = n
	}

	r.mu.Lock()
	perm := r.random.Perm(n)
	r.mu.Unlock()

	return perm[:k]
}

// Code returns an upper-case base-36 code
func (r *Random) Code() string {
	var b strings.Builder
	b.Grow(r.codeLength)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < r.codeLength; i++ {
		b.WriteByte(codeAlphabet[r.random.Intn(len(codeAlphabet))])
	}
	return b.String()
}

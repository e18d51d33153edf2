package order_code

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	prefix       = "FV"
	randomLength = 4
	// no 0/O/1/I, codes get read out loud over the phone
	alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

// NewCode builds a human readable order code, e.g. FV-20250114-K7KQ-0042.
// Uniqueness is best effort: the daily sequence is a count at save time and
// the random block covers same-count collisions.
func (f *CodeFactory) NewCode(createdAt time.Time, dailySequence int64) string {
	random := make([]byte, randomLength)
	for i := range random {
		random[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return fmt.Sprintf("%s-%s-%s-%04d", prefix, createdAt.Format("20060102"), random, dailySequence)
}

package booking

import (
	"crypto/rand"
	"fmt"
	"time"

	"dahabiyat/models"
)

// referenceAlphabet omits easily confused characters (0/O, 1/I).
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceSuffixLen = 4

// GenerateReference builds a customer-facing booking reference: a kind
// prefix ('V' or 'P'), a time-derived numeric component, and a short random
// suffix. The bookings collection enforces a unique index on the reference;
// the caller retries generation on a duplicate-key insert.
func GenerateReference(kind models.ItemKind, now time.Time) string {
	buf := make([]byte, referenceSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall back to
		// the clock's sub-second bits rather than abort a booking.
		nanos := now.UnixNano()
		for i := range buf {
			buf[i] = byte(nanos >> (8 * i))
		}
	}
	for i := range buf {
		buf[i] = referenceAlphabet[int(buf[i])%len(referenceAlphabet)]
	}
	return fmt.Sprintf("%c%08d%s", kind.ReferencePrefix(), now.UTC().Unix()%100000000, buf)
}

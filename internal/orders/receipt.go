package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReceiptGenerator produces the client-supplied reference Razorpay stores on
// each order. Uniqueness is best effort (wall clock plus a random tail);
// collisions are neither detected nor handled.
type ReceiptGenerator struct {
	prefix string
}

func NewReceiptGenerator(prefix string) *ReceiptGenerator {
	return &ReceiptGenerator{prefix: prefix}
}

func (g *ReceiptGenerator) Generate() string {
	return fmt.Sprintf("%s_%d_%s", g.prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

package services

import (
	"fmt"
	"math/rand"
	"time"
)

// nowFunc is swapped out by tests that pin the clock.
var nowFunc = time.Now

// GenerateTrackingCode produces a customer-shareable order reference of the
// form MNG<yy><mm><dd><4 random digits>. Collisions within one day are rare
// enough that the unique index on orders.tracking_code is the only backstop.
func GenerateTrackingCode() string {
	now := nowFunc()
	return fmt.Sprintf("MNG%02d%02d%02d%04d", now.Year()%100, int(now.Month()), now.Day(), rand.Intn(10000))
}

package service

import "crypto/rand"

// Tracking numbers are "CMS" followed by eight uppercase alphanumerics.
// No uniqueness probe is made at generation time; the unique constraint
// on couriers.tracking_no is the actual guarantee, and a collision
// surfaces as an insert conflict.
const (
	trackingPrefix  = "CMS"
	trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingLength  = 8
)

// NewTrackingNumber generates a short, human-shareable tracking number
// from a crypto-grade random source.
func NewTrackingNumber() string {
	buf := make([]byte, trackingLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}

	for i, b := range buf {
		buf[i] = trackingCharset[int(b)%len(trackingCharset)]
	}

	return trackingPrefix + string(buf)
}

package flow

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	emailRange = 1000
	phoneRange = 10_000_000_000
)

// Contact is the throwaway identity typed into the checkout form.
type Contact struct {
	Email string
	Phone string
}

// ContactGenerator produces synthetic contacts. Not safe for concurrent use.
type ContactGenerator struct {
	rnd *rand.Rand
}

// NewContactGenerator seeds from the clock when rnd is nil.
func NewContactGenerator(rnd *rand.Rand) *ContactGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ContactGenerator{rnd: rnd}
}

// Email returns test<n>@example.com with n in [0, 1000).
func (g *ContactGenerator) Email() string {
	return fmt.Sprintf("test%d@example.com", g.rnd.Intn(emailRange))
}

// Phone returns a number in [0, 10^10) as an 11 digit, zero padded string.
func (g *ContactGenerator) Phone() string {
	return fmt.Sprintf("%011d", g.rnd.Int63n(phoneRange))
}

func (g *ContactGenerator) Next() Contact {
	return Contact{Email: g.Email(), Phone: g.Phone()}
}

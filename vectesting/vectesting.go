// Package vectesting provides instrumented element types for exercising
// container lifetime behavior, and a generator that mints them with
// payloads drawn from a seeded stream so test data is the same from run
// to run.
package vectesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Ledger tallies the lifecycle events of every probe minted against it.
// Live is the balance the other counters must reconcile to: values
// currently owning a payload.
type Ledger struct {
	Live      int // values currently owning a payload
	Minted    int // values created by a generator
	Clones    int // successful Clone calls
	Relocates int // Relocate calls
	Disposals int // Dispose calls that retired an owning value

	failAt  int
	failErr error
}

// FailCloneAt arms the ledger so that the nth subsequent Clone call,
// counting from 1, fails with err. The ledger disarms after firing.
func (l *Ledger) FailCloneAt(n int, err error) {
	l.failAt, l.failErr = n, err
}

func (l *Ledger) cloneGate() error {
	if l.failAt > 0 {
		l.failAt--
		if l.failAt == 0 {
			return l.failErr
		}
	}
	return nil
}

// AssertBalanced fails the test unless every value minted or cloned
// against the ledger has been disposed.
func (l *Ledger) AssertBalanced(t testing.TB) {
	t.Helper()
	require.Zero(t, l.Live,
		"leaked values: minted %d, cloned %d, relocated %d, disposed %d",
		l.Minted, l.Clones, l.Relocates, l.Disposals)
}

// Probe is an element exercising every capability: it clones, relocates
// and disposes, reporting each event to its ledger. The zero Probe owns
// nothing and all its hooks are no-ops.
type Probe struct {
	led     *Ledger
	owns    bool
	Payload string
}

func (p *Probe) Clone() (Probe, error) {
	if p.led == nil {
		return Probe{}, nil
	}
	if err := p.led.cloneGate(); err != nil {
		return Probe{}, err
	}
	p.led.Clones++
	p.led.Live++
	return Probe{led: p.led, owns: true, Payload: p.Payload}, nil
}

func (p *Probe) Relocate() Probe {
	if p.led == nil {
		return Probe{}
	}
	p.led.Relocates++
	v := *p
	p.owns = false
	return v
}

func (p *Probe) Dispose() {
	if p.led == nil || !p.owns {
		return
	}
	p.led.Disposals++
	p.led.Live--
	p.owns = false
}

// CopyProbe clones and disposes but has no relocation, forcing transfers
// onto the clone-with-rollback path.
type CopyProbe struct {
	led     *Ledger
	owns    bool
	Payload string
}

func (p *CopyProbe) Clone() (CopyProbe, error) {
	if p.led == nil {
		return CopyProbe{}, nil
	}
	if err := p.led.cloneGate(); err != nil {
		return CopyProbe{}, err
	}
	p.led.Clones++
	p.led.Live++
	return CopyProbe{led: p.led, owns: true, Payload: p.Payload}, nil
}

func (p *CopyProbe) Dispose() {
	if p.led == nil || !p.owns {
		return
	}
	p.led.Disposals++
	p.led.Live--
	p.owns = false
}

// MoveProbe relocates and disposes but cannot clone: a move-only element.
type MoveProbe struct {
	led     *Ledger
	owns    bool
	Payload string
}

func (p *MoveProbe) Relocate() MoveProbe {
	if p.led == nil {
		return MoveProbe{}
	}
	p.led.Relocates++
	v := *p
	p.owns = false
	return v
}

func (p *MoveProbe) Dispose() {
	if p.led == nil || !p.owns {
		return
	}
	p.led.Disposals++
	p.led.Live--
	p.owns = false
}

// Gen mints probes against a single ledger. The payload stream is drawn
// from the seed, so runs are repeatable.
type Gen struct {
	Led *Ledger
	rng *rand.Rand
}

func NewGen(seed int64) *Gen {
	return &Gen{Led: &Ledger{}, rng: rand.New(rand.NewSource(seed))}
}

func (g *Gen) payload() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		panic(fmt.Sprintf("vectesting: drawing payload: %v", err))
	}
	return id.String()
}

func (g *Gen) Mint() Probe {
	g.Led.Minted++
	g.Led.Live++
	return Probe{led: g.Led, owns: true, Payload: g.payload()}
}

func (g *Gen) MintCopy() CopyProbe {
	g.Led.Minted++
	g.Led.Live++
	return CopyProbe{led: g.Led, owns: true, Payload: g.payload()}
}

func (g *Gen) MintMove() MoveProbe {
	g.Led.Minted++
	g.Led.Live++
	return MoveProbe{led: g.Led, owns: true, Payload: g.payload()}
}

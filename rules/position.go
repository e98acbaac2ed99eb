package rules

import (
	"fmt"
	"math/rand"
)

// RepetitionPolicy selects how LegalMoves matches candidate positions
// against the positions already played.
type RepetitionPolicy uint8

const (
	// RepetitionStrict matches on kind and side of every square.
	RepetitionStrict RepetitionPolicy = iota
	// RepetitionOff disables the filter.
	RepetitionOff
	// RepetitionLegacy matches on piece kind only, ignoring color. It treats a
	// white and a black piece of the same kind as equal and can reject
	// positions that were never played. Kept for compatibility with older
	// game records only.
	RepetitionLegacy
)

func (p RepetitionPolicy) String() string {
	switch p {
	case RepetitionOff:
		return "off"
	case RepetitionLegacy:
		return "legacy"
	}
	return "strict"
}

// ParseRepetitionPolicy accepts "strict", "off" and "legacy".
func ParseRepetitionPolicy(s string) (RepetitionPolicy, error) {
	switch s {
	case "", "strict":
		return RepetitionStrict, nil
	case "off", "none":
		return RepetitionOff, nil
	case "legacy":
		return RepetitionLegacy, nil
	}
	return RepetitionStrict, fmt.Errorf("unknown repetition policy %q", s)
}

// Zobrist keys for (side, kind) on each square, and for kind alone.
var zobristPiece [2][7][64]uint64
var zobristKind [7][64]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps keys stable between runs
	rnd := rand.New(rand.NewSource(0xC0DE))
	for side := 0; side < 2; side++ {
		for kind := 1; kind < 7; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[side][kind][sq] = rnd.Uint64()
			}
		}
	}
	for kind := 1; kind < 7; kind++ {
		for sq := 0; sq < 64; sq++ {
			zobristKind[kind][sq] = rnd.Uint64()
		}
	}
}

// positionKey identifies a placement under both policies. Side to move is
// not part of either hash.
type positionKey struct {
	strict uint64
	legacy uint64
}

func (b *Board) currentKey() positionKey {
	var k positionKey
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p.IsEmpty() {
			continue
		}
		k.strict ^= zobristPiece[p.Side][p.Kind][sq]
		k.legacy ^= zobristKind[p.Kind][sq]
	}
	return k
}

// Hash returns the placement hash used by RepetitionStrict.
func (b *Board) Hash() uint64 { return b.currentKey().strict }

func (b *Board) seen(k positionKey) bool {
	for _, p := range b.positions {
		switch b.policy {
		case RepetitionStrict:
			if p.strict == k.strict {
				return true
			}
		case RepetitionLegacy:
			if p.legacy == k.legacy {
				return true
			}
		}
	}
	return false
}

// RecordPosition adds the current placement to the positions LegalMoves
// steers away from. Drivers call it after each committed ply.
func (b *Board) RecordPosition() {
	b.positions = append(b.positions, b.currentKey())
}

// ForgetLastPosition drops the most recently recorded placement.
func (b *Board) ForgetLastPosition() {
	if len(b.positions) > 0 {
		b.positions = b.positions[:len(b.positions)-1]
	}
}

// SeenPositions returns how many placements have been recorded.
func (b *Board) SeenPositions() int { return len(b.positions) }

// Seen reports whether the current placement was already recorded under the
// board's policy.
func (b *Board) Seen() bool {
	return b.policy != RepetitionOff && b.seen(b.currentKey())
}

// Package idgen generates identifiers for categories and bookmarks written to
// the target file.
//
// Ids keep the "<prefix>-<source id>-<suffix>" shape earlier bookmark files
// used, so a target file still shows which export record each entry came
// from, but the suffix no longer depends on the wall clock.
package idgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Strategy names accepted by New.
const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// Generator produces identifiers that are unique within one run.
type Generator interface {
	// NewID returns a fresh identifier. sourceID may be empty.
	NewID(prefix, sourceID string) string
}

// New returns the generator for the named strategy.
func New(strategy string) (Generator, error) {
	switch strings.ToLower(strategy) {
	case "", StrategyUUID:
		return NewUUIDGenerator(), nil
	case StrategySequence:
		return NewSequenceGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s (must be '%s' or '%s')", strategy, StrategyUUID, StrategySequence)
	}
}

// UUIDGenerator suffixes ids with a random (version 4) UUID.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID implements Generator.
func (g *UUIDGenerator) NewID(prefix, sourceID string) string {
	return join(prefix, sourceID, uuid.NewString())
}

// SequenceGenerator suffixes ids with a counter starting at 1. Output is
// deterministic, which keeps golden files stable. Not safe for concurrent use.
type SequenceGenerator struct {
	next int
}

// NewSequenceGenerator creates a SequenceGenerator.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{next: 1}
}

// NewID implements Generator.
func (g *SequenceGenerator) NewID(prefix, sourceID string) string {
	n := g.next
	g.next++
	return join(prefix, sourceID, strconv.Itoa(n))
}

func join(prefix, sourceID, suffix string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if sourceID != "" {
		parts = append(parts, sourceID)
	}
	parts = append(parts, suffix)
	return strings.Join(parts, "-")
}

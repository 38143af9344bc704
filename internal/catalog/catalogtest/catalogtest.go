// Package catalogtest provides a small, fixed catalog for tests in other packages.
package catalogtest

import (
	"testing"

	"github.com/winterarc/winterarc/internal/catalog"
)

// Document is a minimal catalog with one split type ("push"), the
// individual type and a single "hypertrophy" goal.
const Document = `
version: v0.1.0
workouts:
  - type: individual
    groups:
      - name: chest
      - name: back
      - name: shoulders
      - name: biceps
  - type: push
    groups:
      - name: chest
        muscles: [chest]
      - name: back
        muscles: [back]
      - name: shoulders
        muscles: [shoulders]
schemes:
  - goal: hypertrophy
    rep_range: [8, 15]
    ratio: [2, 3]
    rest: [60, 45]
  - goal: strength
    rep_range: [4, 8]
    ratio: [3, 2]
    rest: [120, 60]
tempos: ["2 0 2", "3 0 1"]
exercises:
  - name: bench_press
    type: compound
    environment: gym
    muscles: [chest, shoulders]
    unit: reps
    description: "Lower the bar.___Press it up."
  - name: push_up
    type: compound
    environment: both
    muscles: [chest]
    unit: reps
    description: "Hands under shoulders.___Push."
  - name: cable_fly
    type: accessory
    environment: gym
    muscles: [chest]
    unit: reps
    description: "Arc the handles together."
  - name: pull_up
    type: compound
    environment: both
    muscles: [back, biceps]
    unit: reps
    description: "Pull your chin over the bar."
  - name: lat_pulldown
    type: accessory
    environment: gym
    muscles: [back]
    unit: reps
    description: "Pull the bar to your chest."
  - name: lateral_raise
    type: accessory
    environment: both
    muscles: [shoulders]
    unit: reps
    description: "Raise the dumbbells to the side."
  - name: curl
    type: accessory
    environment: gym
    muscles: [biceps]
    unit: reps
    description: "Curl the bar."
  - name: dead_hang
    type: accessory
    environment: both
    muscles: [back]
    unit: seconds
    description: "Hang from the bar."
  - name: doorway_stretch
    type: accessory
    environment: home
    muscles: [chest]
    unit: seconds
    description: "Lean through a doorway."
`

// New parses Document and fails the test on error.
func New(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(Document))
	if err != nil {
		t.Fatalf("parse test catalog: %v", err)
	}
	return c
}

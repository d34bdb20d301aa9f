// Package seed generates demo balance wheel histories and feeds them
// to a running service, for manual testing and screenshots.
package seed

import (
	"crypto/rand"
	"math/big"

	"balancewheel/internal/domain/wheel"
)

// Rating shapes used to make the generated wheels look lived-in
// instead of uniformly random.
const (
	caseBalanced = iota
	caseOneHigh
	caseOneLow
	caseScattered
	shapeCount
)

var sampleNotes = []string{
	"",
	"",
	"steady week",
	"need to pick this back up",
	"best it has been in months",
	"slipping, schedule a review",
	"tried something new here",
}

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func clampRating(r int) int {
	if r < wheel.MinRating {
		return wheel.MinRating
	}
	if r > wheel.MaxRating {
		return wheel.MaxRating
	}
	return r
}

// GenerateInputs produces one set of save inputs: six ratings shaped
// by a random pattern, with occasional notes.
func GenerateInputs() (map[wheel.Category]int, map[wheel.Category]string) {
	cats := wheel.Categories()
	ratings := make(map[wheel.Category]int, len(cats))
	notes := make(map[wheel.Category]string, len(cats))

	shape := randomInt(shapeCount)
	spotlight := randomInt(len(cats))
	for i, c := range cats {
		var r int
		switch shape {
		case caseBalanced:
			r = 5 + randomInt(3) - 1
		case caseOneHigh:
			r = 4 + randomInt(3)
			if i == spotlight {
				r = 9 + randomInt(2)
			}
		case caseOneLow:
			r = 5 + randomInt(3)
			if i == spotlight {
				r = randomInt(3)
			}
		default:
			r = randomInt(wheel.MaxRating + 1)
		}
		ratings[c] = clampRating(r)
		notes[c] = sampleNotes[randomInt(len(sampleNotes))]
	}
	return ratings, notes
}

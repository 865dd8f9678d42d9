package jafr

import (
	"fmt"
	"math"

	"github.com/burjlab/ruhani/internal/numerology"
)

// goldenRatio is used by the fibonacci-relation proximity check.
const goldenRatio = 1.618033988749

// computePatterns derives every numeric pattern from the combined value.
func computePatterns(combined int) Patterns {
	target := combined % 10000

	matches := make([]SequenceMatch, 0, len(referenceSequences))
	for _, seq := range referenceSequences {
		closest, dist := nearestInSequence(seq.values, target)
		matches = append(matches, SequenceMatch{
			Sequence:     seq.name,
			ClosestMatch: closest,
			Distance:     dist,
			Significance: sequenceSignificance(seq.baseSig, closest, dist),
		})
	}

	return Patterns{
		Sequences:   matches,
		DigitalRoot: numerology.DigitalRoot(combined),
		Modular: ModularPatterns{
			Mod7:   combined % 7,
			Mod12:  combined % 12,
			Mod19:  combined % 19,
			Mod28:  combined % 28,
			Mod99:  combined % 99,
			Mod786: combined % 786,
		},
		Geometric: GeometricPatterns{
			TriangularNumber:  numerology.IsTriangular(combined),
			SquareNumber:      numerology.IsPerfectSquare(combined),
			PentagonalNumber:  numerology.IsPentagonal(combined),
			FibonacciRelation: fibonacciRelation(combined),
		},
	}
}

// nearestInSequence scans values front to back and returns the element
// nearest to target with its distance. On a distance tie the earlier
// element wins, keeping results reproducible.
func nearestInSequence(values []int, target int) (closest, distance int) {
	closest = values[0]
	distance = abs(values[0] - target)
	for _, v := range values[1:] {
		if d := abs(v - target); d < distance {
			closest, distance = v, d
		}
	}
	return closest, distance
}

// sequenceSignificance bands the distance at 0 / ≤5 / ≤20 / else.
func sequenceSignificance(base string, match, distance int) string {
	switch {
	case distance == 0:
		return fmt.Sprintf("%s - مطابقة تامة للرقم %d", base, match)
	case distance <= 5:
		return fmt.Sprintf("%s - قريب جداً من الرقم %d", base, match)
	case distance <= 20:
		return fmt.Sprintf("%s - قريب من الرقم %d", base, match)
	default:
		return fmt.Sprintf("%s - تأثير ضعيف من الرقم %d", base, match)
	}
}

// fibonacciRelation reports exact membership in the spiritual fibonacci
// sequence, proximity to fib × φ within 1.0, or no relation.
func fibonacciRelation(n int) string {
	fibs := sequenceByName("fibonacci_spiritual").values
	for i, f := range fibs {
		if n == f {
			return fmt.Sprintf("رقم فيبوناتشي مباشر - الموضع %d", i+1)
		}
	}
	for _, f := range fibs {
		if math.Abs(float64(n)-float64(f)*goldenRatio) < 1.0 {
			return fmt.Sprintf("مرتبط بالنسبة الذهبية - قريب من %d × φ", f)
		}
	}
	return "لا توجد علاقة مباشرة مع فيبوناتشي"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

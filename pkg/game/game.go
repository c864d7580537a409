// Package game models a dealt numbers round: six numbers drawn from the
// fixed deck (one of each big number 25/50/75/100, two of each small
// number 1-10) and a three digit target.
package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

var (
	bigNumbers   = []int{25, 50, 75, 100}
	smallNumbers = []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10}
)

// Game is a validated deal. Once constructed it is read-only.
type Game struct {
	numbers []int
	target  int
}

// New validates a deal and returns it with the numbers sorted.
func New(numbers []int, target int) (*Game, error) {
	if target < 100 || target > 999 {
		return nil, fmt.Errorf("target %d out of range, must be between 100 and 999", target)
	}
	if len(numbers) != 6 {
		return nil, fmt.Errorf("need exactly 6 numbers, got %d", len(numbers))
	}

	for n, count := range lo.CountValues(numbers) {
		switch {
		case n >= 1 && n <= 10:
			if count > 2 {
				return nil, fmt.Errorf("small number %d used %d times, at most 2 allowed", n, count)
			}
		case n == 25 || n == 50 || n == 75 || n == 100:
			if count > 1 {
				return nil, fmt.Errorf("big number %d used %d times, at most 1 allowed", n, count)
			}
		default:
			return nil, fmt.Errorf("%d is not a valid number, pick from 1-10 or 25/50/75/100", n)
		}
	}

	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)
	return &Game{numbers: sorted, target: target}, nil
}

// Generate deals a random game from the given source. large is the number
// of big numbers in the deal (0 to 4); pass a negative value to pick it at
// random.
func Generate(rng *frand.RNG, large int) (*Game, error) {
	if large > 4 {
		return nil, fmt.Errorf("at most 4 big numbers in a deal, got %d", large)
	}
	if large < 0 {
		large = rng.Intn(5)
	}

	big := append([]int(nil), bigNumbers...)
	small := append([]int(nil), smallNumbers...)
	rng.Shuffle(len(big), func(i, j int) { big[i], big[j] = big[j], big[i] })
	rng.Shuffle(len(small), func(i, j int) { small[i], small[j] = small[j], small[i] })

	numbers := make([]int, 0, 6)
	numbers = append(numbers, small[:6-large]...)
	numbers = append(numbers, big[:large]...)
	return New(numbers, 100+rng.Intn(900))
}

// Numbers returns a copy of the dealt numbers, sorted ascending.
func (g *Game) Numbers() []int {
	return append([]int(nil), g.numbers...)
}

// Target returns the number to reach.
func (g *Game) Target() int {
	return g.target
}

func (g *Game) String() string {
	parts := make([]string, len(g.numbers))
	for i, n := range g.numbers {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("Numbers: %s, Target: %d", strings.Join(parts, ", "), g.target)
}

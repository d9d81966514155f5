// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator holds the integer arithmetic drills.
package calculator

// PairTarget is the sum CheckTheSum looks for.
const PairTarget = 20

// Add returns the sum of two integers
func Add(x, y int) int {
	return x + y
}

// Sum adds up every number in the slice. A nil slice counts as empty.
func Sum(numbers []int) int {
	total := 0
	for _, n := range numbers {
		total += n
	}
	return total
}

// CheckTheSum reports whether any pair of a, b and c adds up to exactly PairTarget.
func CheckTheSum(a, b, c int) bool {
	return a+b == PairTarget || a+c == PairTarget || b+c == PairTarget
}

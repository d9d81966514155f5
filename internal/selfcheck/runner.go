// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package selfcheck runs case sheets against the drill operations.
package selfcheck

import (
	"fmt"
	"log/slog"
	"strconv"

	"unit-drills/internal/calculator"
	"unit-drills/internal/person"
)

// Evaluate runs the operation named by c and renders its result.
func Evaluate(c Case) (string, error) {
	switch c.Op {
	case OpAdd:
		if len(c.Args) != 2 {
			return "", fmt.Errorf("%w: add takes 2 args, got %d", ErrBadArgs, len(c.Args))
		}
		return strconv.Itoa(calculator.Add(c.Args[0], c.Args[1])), nil

	case OpSum:
		return strconv.Itoa(calculator.Sum(c.Args)), nil

	case OpPairSum:
		if len(c.Args) != 3 {
			return "", fmt.Errorf("%w: pairsum takes 3 args, got %d", ErrBadArgs, len(c.Args))
		}
		return strconv.FormatBool(calculator.CheckTheSum(c.Args[0], c.Args[1], c.Args[2])), nil

	case OpPerson:
		if c.Person == nil {
			return "", fmt.Errorf("%w: person case needs a person block", ErrBadArgs)
		}
		p := person.NewFromPtr(c.Person.Name, c.Person.Age)
		return formatPerson(p.Name(), p.Age()), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, c.Op)
}

// Run evaluates every case and never stops at the first failure.
func Run(cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}

	for _, c := range cases {
		got, err := Evaluate(c)
		want := c.Want.String()
		res := Result{
			Case: c,
			Got:  got,
			Err:  err,
			Pass: err == nil && got == want,
		}

		if !res.Pass {
			slog.Warn("Case failed",
				"case", c.Name,
				"op", c.Op,
				"got", got,
				"want", want,
				"error", err)
		}

		report.Results = append(report.Results, res)
	}

	slog.Info("Self-check finished",
		"total", len(report.Results),
		"passed", report.Passed(),
		"failed", report.Failed())

	return report
}

// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package selfcheck

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOperation is returned for a case whose op is not one of the drills.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrBadArgs is returned when a case carries the wrong inputs for its op.
	ErrBadArgs = errors.New("bad arguments")
	// ErrEmptySheet is returned when a case sheet lists no cases.
	ErrEmptySheet = errors.New("case sheet has no cases")
)

// Op names one of the drill operations
type Op string

const (
	OpAdd     Op = "add"
	OpSum     Op = "sum"
	OpPairSum Op = "pairsum"
	OpPerson  Op = "person"
)

// Case is one expected result in a case sheet
type Case struct {
	Name   string       `yaml:"name"`
	Op     Op           `yaml:"op"`
	Args   []int        `yaml:"args,omitempty"`
	Person *PersonInput `yaml:"person,omitempty"`
	Want   Expect       `yaml:"want"`
}

// PersonInput holds the constructor arguments for a person case.
// A nil Name is an absent name.
type PersonInput struct {
	Name *string `yaml:"name"`
	Age  int     `yaml:"age"`
}

// PersonWant is the expected record for a person case
type PersonWant struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

// Expect is either a scalar (bool or int) or a person record. Scalar holds the
// canonical text of the decoded value.
type Expect struct {
	Scalar string
	Person *PersonWant
}

// UnmarshalYAML accepts a scalar or a {name, age} mapping.
func (e *Expect) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return e.decodeScalar(node)
	case yaml.MappingNode:
		var p PersonWant
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("failed to decode person expectation: %w", err)
		}
		e.Person = &p
		return nil
	}
	return fmt.Errorf("line %d: want must be a scalar or a mapping", node.Line)
}

// decodeScalar stores an int or bool in the canonical form Evaluate renders,
// so 0x15, +21 and 21 all mean the same expectation.
func (e *Expect) decodeScalar(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadArgs, node.Line, err)
		}
		e.Scalar = strconv.Itoa(n)
		return nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadArgs, node.Line, err)
		}
		e.Scalar = strconv.FormatBool(b)
		return nil
	}
	return fmt.Errorf("%w: line %d: want %q must be an int or a bool", ErrBadArgs, node.Line, node.Value)
}

// String renders the expectation in the same form Evaluate uses for results.
func (e Expect) String() string {
	if e.Person != nil {
		return formatPerson(e.Person.Name, e.Person.Age)
	}
	return e.Scalar
}

// Result is the outcome of running a single case
type Result struct {
	Case Case
	Got  string
	Err  error
	Pass bool
}

// Report collects every result of a run
type Report struct {
	Results []Result
}

// Passed returns the number of passing cases
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every case passed
func (r Report) OK() bool {
	return r.Failed() == 0
}

func formatPerson(name string, age int) string {
	return fmt.Sprintf("name=%q age=%d", name, age)
}

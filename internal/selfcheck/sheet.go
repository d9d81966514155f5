// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package selfcheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type sheet struct {
	Cases []Case `yaml:"cases"`
}

// LoadSheet reads a YAML case sheet from path
func LoadSheet(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case sheet: %w", err)
	}
	return ParseSheet(data)
}

// ParseSheet decodes a YAML case sheet
func ParseSheet(data []byte) ([]Case, error) {
	var s sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse case sheet: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, ErrEmptySheet
	}
	return s.Cases, nil
}

// Builtin returns the reference cases for all four drills.
func Builtin() []Case {
	jane := "Jane Doe"
	empty := ""
	tab := "\t"

	scalar := func(v string) Expect { return Expect{Scalar: v} }
	record := func(name string, age int) Expect {
		return Expect{Person: &PersonWant{Name: name, Age: age}}
	}

	return []Case{
		{Name: "pair sum all tens", Op: OpPairSum, Args: []int{10, 10, 10}, Want: scalar("true")},
		{Name: "pair sum all fifteens", Op: OpPairSum, Args: []int{15, 15, 15}, Want: scalar("false")},
		{Name: "pair sum with negatives", Op: OpPairSum, Args: []int{30, -10, -10}, Want: scalar("true")},
		{Name: "pair sum twenty and negatives", Op: OpPairSum, Args: []int{20, -10, -10}, Want: scalar("false")},
		{Name: "pair sum all negative", Op: OpPairSum, Args: []int{-10, -10, -10}, Want: scalar("false")},
		{Name: "pair sum all zero", Op: OpPairSum, Args: []int{0, 0, 0}, Want: scalar("false")},
		{Name: "pair sum all twenty", Op: OpPairSum, Args: []int{20, 20, 20}, Want: scalar("false")},

		{Name: "sum one to six", Op: OpSum, Args: []int{1, 2, 3, 4, 5, 6}, Want: scalar("21")},
		{Name: "sum absent", Op: OpSum, Want: scalar("0")},
		{Name: "sum empty", Op: OpSum, Args: []int{}, Want: scalar("0")},

		{Name: "add", Op: OpAdd, Args: []int{10, 15}, Want: scalar("25")},

		{Name: "person valid", Op: OpPerson, Person: &PersonInput{Name: &jane, Age: 23}, Want: record("Jane Doe", 23)},
		{Name: "person negative age", Op: OpPerson, Person: &PersonInput{Name: &jane, Age: -1}, Want: record("Jane Doe", 0)},
		{Name: "person age over limit", Op: OpPerson, Person: &PersonInput{Name: &jane, Age: 131}, Want: record("Jane Doe", 130)},
		{Name: "person zero age", Op: OpPerson, Person: &PersonInput{Name: &jane, Age: 0}, Want: record("Jane Doe", 0)},
		{Name: "person null name", Op: OpPerson, Person: &PersonInput{Age: 1}, Want: record("Unknown", 1)},
		{Name: "person tab name", Op: OpPerson, Person: &PersonInput{Name: &tab, Age: 1}, Want: record("Unknown", 1)},
		{Name: "person empty name", Op: OpPerson, Person: &PersonInput{Name: &empty, Age: 1}, Want: record("Unknown", 1)},
	}
}

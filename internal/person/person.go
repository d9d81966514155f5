// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package person builds Person records whose fields are always in range.
package person

import "strings"

const (
	// DefaultName replaces an absent or blank name.
	DefaultName = "Unknown"
	// MaxAge is the upper age bound.
	MaxAge = 130
	// MinAge is the lower age bound.
	MinAge = 0
)

// Person is an immutable name/age record. Build it with New; the zero value
// is not a valid record.
type Person struct {
	name string
	age  int
}

// New creates a Person, defaulting a blank name and clamping age into [MinAge, MaxAge].
func New(name string, age int) Person {
	return Person{
		name: NormalizeName(name),
		age:  ClampAge(age),
	}
}

// NewFromPtr is New for callers that model an absent name as nil.
func NewFromPtr(name *string, age int) Person {
	if name == nil {
		return New("", age)
	}
	return New(*name, age)
}

// Name returns the person's name
func (p Person) Name() string {
	return p.name
}

// Age returns the person's age
func (p Person) Age() int {
	return p.age
}

// NormalizeName returns DefaultName when name is empty after trimming,
// otherwise name exactly as given.
func NormalizeName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultName
	}
	return name
}

// ClampAge saturates age at MaxAge and MinAge.
func ClampAge(age int) int {
	if age > MaxAge {
		return MaxAge
	}
	if age > 0 {
		return age
	}
	return MinAge
}

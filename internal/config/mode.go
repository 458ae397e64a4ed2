// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Mode is the deployment environment the process runs in.
type Mode string

const (
	Development Mode = "development"
	Test        Mode = "test"
	Production  Mode = "production"
)

// IsProduction reports whether m is [Production].
func (m Mode) IsProduction() bool {
	return m == Production
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case Development, Test, Production:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

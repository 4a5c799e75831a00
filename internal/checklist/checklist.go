// Package checklist maps ADGM legal processes to the ordered set of document
// types each one requires.
package checklist

import (
	"errors"
	"fmt"
)

// ErrUnknownProcess is returned when a process name has no checklist.
// Callers are expected to present only known processes (via Processes), so
// hitting this is a programmer error and must not be swallowed.
var ErrUnknownProcess = errors.New("unknown process")

type process struct {
	name     string
	required []string
}

// processes is ordered so the UI selector is stable.
var processes = []process{
	{
		name: "Company Incorporation",
		required: []string{
			"Articles of Association",
			"Memorandum of Association",
			"Board Resolution",
			"UBO Declaration Form",
			"Register of Members and Directors",
		},
	},
	{
		name: "Change of Registered Address",
		required: []string{
			"Change of Registered Address Notice",
			"Board Resolution",
		},
	},
}

// Processes returns the known process names in declaration order.
func Processes() []string {
	names := make([]string, 0, len(processes))
	for _, p := range processes {
		names = append(names, p.name)
	}
	return names
}

// Required returns the ordered required document types for a process.
func Required(name string) ([]string, error) {
	for _, p := range processes {
		if p.name == name {
			out := make([]string, len(p.required))
			copy(out, p.required)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProcess, name)
}

// Missing returns the required document types for the process that do not
// appear anywhere in detected, preserving the checklist's declaration order.
func Missing(name string, detected []string) ([]string, error) {
	required, err := Required(name)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(detected))
	for _, d := range detected {
		present[d] = true
	}
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	return missing, nil
}

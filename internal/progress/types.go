package progress

import "strings"

// Matcher decides whether a processed command completes something.
type Matcher interface {
	Matches(command, output string) bool
}

// Objective is completed by the first command whose text contains
// CommandIncludes and whose output contains OutputIncludes. Empty
// fragments match anything.
type Objective struct {
	Title           string `yaml:"title" json:"title"`
	CommandIncludes string `yaml:"commandIncludes" json:"commandIncludes"`
	OutputIncludes  string `yaml:"outputIncludes" json:"outputIncludes"`
}

// Ensure Objective implements Matcher
var _ Matcher = Objective{}

func (o Objective) Matches(command, output string) bool {
	return strings.Contains(command, o.CommandIncludes) && strings.Contains(output, o.OutputIncludes)
}

// ParseObjective reads the "Title | commandIncludes | outputIncludes" list
// form used in lesson files. Missing fragments are left empty.
func ParseObjective(line string) (Objective, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-* ")
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return Objective{}, false
	}
	o := Objective{Title: parts[0]}
	if len(parts) > 1 {
		o.CommandIncludes = parts[1]
	}
	if len(parts) > 2 {
		o.OutputIncludes = parts[2]
	}
	return o, true
}

// Lesson is an ordered group of objectives loaded from YAML.
type Lesson struct {
	ID         string      `yaml:"id" json:"id"`
	Title      string      `yaml:"title" json:"title"`
	Hint       string      `yaml:"hint" json:"hint,omitempty"`
	Objectives []Objective `yaml:"objectives" json:"objectives"`
}

// EventKind distinguishes the notifications a Tracker emits.
type EventKind string

const (
	EventObjective EventKind = "objective"
	EventComplete  EventKind = "complete"
)

// Event is a progress notification for the learner's terminal.
type Event struct {
	Kind    EventKind `json:"type"`
	Message string    `json:"message"`
}

package editor

import (
	"fmt"

	"resume-builder/internal/model"
)

// Op names the kind of edit a Command carries.
type Op string

const (
	OpSetPersonal Op = "setPersonal"
	OpAdd         Op = "add"
	OpUpdate      Op = "update"
	OpRemove      Op = "remove"
)

// Command is one user edit. It is the message type dispatched through the
// session's single update channel.
type Command struct {
	Op      Op      `json:"op"`
	Section Section `json:"section,omitempty"`
	ID      string  `json:"id,omitempty"`
	Field   string  `json:"field,omitempty"`
	Value   string  `json:"value,omitempty"`
}

func SetPersonal(field, value string) Command {
	return Command{Op: OpSetPersonal, Field: field, Value: value}
}

func AddEntry(section Section) Command {
	return Command{Op: OpAdd, Section: section}
}

func UpdateEntry(section Section, id, field, value string) Command {
	return Command{Op: OpUpdate, Section: section, ID: id, Field: field, Value: value}
}

func RemoveEntry(section Section, id string) Command {
	return Command{Op: OpRemove, Section: section, ID: id}
}

// Result is the outcome of applying a Command. NewID is set for OpAdd.
type Result struct {
	Resume model.Resume
	NewID  string
}

// Apply reduces rec by cmd.
func (e *Editor) Apply(rec model.Resume, cmd Command) (Result, error) {
	switch cmd.Op {
	case OpSetPersonal:
		next, err := e.SetPersonal(rec, cmd.Field, cmd.Value)
		return Result{Resume: next}, err
	case OpAdd:
		next, id, err := e.Add(rec, cmd.Section)
		return Result{Resume: next, NewID: id}, err
	case OpUpdate:
		next, err := e.Update(rec, cmd.Section, cmd.ID, cmd.Field, cmd.Value)
		return Result{Resume: next}, err
	case OpRemove:
		next, err := e.Remove(rec, cmd.Section, cmd.ID)
		return Result{Resume: next}, err
	}
	return Result{Resume: rec}, fmt.Errorf("editor: unknown op %q", cmd.Op)
}

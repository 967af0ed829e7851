package main

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
)

// Step operations.
const (
	opCreateProject = "create_project"
	opAddColumn     = "add_column"
	opCreateTag     = "create_tag"
	opCreateTicket  = "create_ticket"
	opUpdateTicket  = "update_ticket"
	opMoveTicket    = "move_ticket"
	opBulkMove      = "bulk_move"
	opCloseTicket   = "close_ticket"
	opReopenTicket  = "reopen_ticket"
	opAssignTicket  = "assign_ticket"
	opAddTag        = "add_tag"
	opRemoveTag     = "remove_tag"
	opListTickets   = "list_tickets"
)

// Scenario is a seeded org and an ordered list of steps run against it.
// Entities created by steps are referred to by the ref the creating step
// gives them; columns by name within their project.
type Scenario struct {
	Org   SeedOrg    `koanf:"org"`
	Users []SeedUser `koanf:"users"`
	// Actor is the ref of the user steps act as unless they name another.
	Actor string `koanf:"actor"`
	Steps []Step `koanf:"steps"`
}

// SeedOrg is the org every project of the scenario belongs to.
type SeedOrg struct {
	Name string `koanf:"name"`
}

// SeedUser is a user and, if Role is set, their membership in the org.
type SeedUser struct {
	Ref         string `koanf:"ref"`
	Email       string `koanf:"email"`
	DisplayName string `koanf:"display_name"`
	Role        string `koanf:"role"`
}

// Step is one service call. Which fields apply depends on Op.
type Step struct {
	Op    string `koanf:"op"`
	Actor string `koanf:"actor"`

	// Ref names the project or ticket a create step makes.
	Ref     string   `koanf:"ref"`
	Project string   `koanf:"project"`
	Ticket  string   `koanf:"ticket"`
	Tickets []string `koanf:"tickets"`

	Name        string   `koanf:"name"`
	Prefix      string   `koanf:"prefix"`
	Columns     []string `koanf:"columns"`
	Column      string   `koanf:"column"`
	Title       string   `koanf:"title"`
	Description string   `koanf:"description"`
	Tag         string   `koanf:"tag"`
	Assignee    string   `koanf:"assignee"`

	// Patch holds the fields of an update_ticket step, checked by
	// ticket.PatchFromMap.
	Patch  map[string]any `koanf:"patch"`
	Filter StepFilter     `koanf:"filter"`
}

// StepFilter is the filter of a list_tickets step.
type StepFilter struct {
	Column   string   `koanf:"column"`
	Assignee string   `koanf:"assignee"`
	Tags     []string `koanf:"tags"`
	Closed   *bool    `koanf:"closed"`
	Query    string   `koanf:"query"`
}

// LoadScenario reads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := k.Unmarshal("", &sc); err != nil {
		return nil, fmt.Errorf("unmarshalling scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario's structure. Entity rules are left to the
// service.
func (sc *Scenario) Validate() error {
	var errs []error

	users := make(map[string]bool, len(sc.Users))
	for i, u := range sc.Users {
		switch {
		case u.Ref == "":
			errs = append(errs, fmt.Errorf("users[%d].ref must not be empty", i))
		case users[u.Ref]:
			errs = append(errs, fmt.Errorf("users[%d].ref %q is duplicated", i, u.Ref))
		}
		users[u.Ref] = true
		if u.Role != "" && !org.Role(u.Role).IsValid() {
			errs = append(errs, fmt.Errorf("users[%d].role %q is not a valid role", i, u.Role))
		}
	}

	if !users[sc.Actor] {
		errs = append(errs, fmt.Errorf("actor %q is not a user of the scenario", sc.Actor))
	}

	for i, st := range sc.Steps {
		if st.Actor != "" && !users[st.Actor] {
			errs = append(errs, fmt.Errorf("steps[%d].actor %q is not a user of the scenario", i, st.Actor))
		}
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("steps[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func (st *Step) validate() error {
	require := func(fields map[string]string) error {
		var errs []error
		for name, v := range fields {
			if v == "" {
				errs = append(errs, fmt.Errorf("%s requires %s", st.Op, name))
			}
		}
		return errors.Join(errs...)
	}

	switch st.Op {
	case opCreateProject:
		return require(map[string]string{"ref": st.Ref})
	case opAddColumn, opCreateTag:
		return require(map[string]string{"project": st.Project})
	case opCreateTicket:
		return require(map[string]string{"project": st.Project, "ref": st.Ref})
	case opUpdateTicket, opCloseTicket, opReopenTicket, opAssignTicket:
		return require(map[string]string{"ticket": st.Ticket})
	case opMoveTicket:
		return require(map[string]string{"ticket": st.Ticket, "column": st.Column})
	case opAddTag, opRemoveTag:
		return require(map[string]string{"ticket": st.Ticket})
	case opBulkMove:
		if len(st.Tickets) == 0 {
			return errors.New("bulk_move requires tickets")
		}
		return require(map[string]string{"column": st.Column})
	case opListTickets:
		return require(map[string]string{"project": st.Project})
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
}

package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
)

// ColumnSpec describes one column of a new project's board.
type ColumnSpec struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name string    `json:"name" validate:"notblank,max=100"`
}

// CreateProjectInput is the input of CreateProject. Columns are created in
// order with positions 0..n-1.
type CreateProjectInput struct {
	ID      uuid.UUID    `json:"id" validate:"required"`
	OrgID   uuid.UUID    `json:"org_id" validate:"required"`
	Name    string       `json:"name" validate:"notblank,max=100"`
	Prefix  string       `json:"prefix" validate:"required,max=10,prefix"`
	Columns []ColumnSpec `json:"columns" validate:"unique=ID,dive"`
}

// Validate checks the CreateProjectInput schema.
func (in *CreateProjectInput) Validate() error {
	return domain.Validate(in)
}

// ProjectBoard is a project together with its workflow columns.
type ProjectBoard struct {
	Project project.Project `json:"project"`
	Columns []board.Column  `json:"columns"`
}

// CreateProject creates a project and its initial board. A project without
// columns could never hold a ticket, so an empty column list fails with
// domain.ErrEmptyBoard.
func CreateProject(meta Meta, in CreateProjectInput) (Result[ProjectBoard], error) {
	if err := validateAll(arg("meta", &meta), arg("", &in)); err != nil {
		return Result[ProjectBoard]{}, err
	}
	if len(in.Columns) == 0 {
		return Result[ProjectBoard]{}, domain.ErrEmptyBoard
	}

	p := project.Project{
		ID:        in.ID,
		OrgID:     in.OrgID,
		Name:      in.Name,
		Prefix:    in.Prefix,
		CreatedAt: meta.Now,
		UpdatedAt: meta.Now,
	}
	cols := make([]board.Column, len(in.Columns))
	names := make([]string, len(in.Columns))
	for i, c := range in.Columns {
		cols[i] = board.Column{
			ID:        c.ID,
			ProjectID: p.ID,
			Name:      c.Name,
			Position:  i,
			CreatedAt: meta.Now,
		}
		names[i] = c.Name
	}

	return Result[ProjectBoard]{
		Data: ProjectBoard{Project: p, Columns: cols},
		Events: []activity.NewEvent{
			projectEvent(meta, p, activity.TypeProjectCreated, map[string]any{
				"name":    p.Name,
				"prefix":  p.Prefix,
				"columns": names,
			}),
		},
	}, nil
}

// NewColumn is the input of AddColumn.
type NewColumn struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name string    `json:"name" validate:"notblank,max=100"`
}

// Validate checks the NewColumn schema.
func (in *NewColumn) Validate() error {
	return domain.Validate(in)
}

// AddColumn appends a column to the end of the project's board. Columns of
// other projects in cols are ignored.
func AddColumn(meta Meta, p project.Project, cols []board.Column, in NewColumn) (Result[board.Column], error) {
	if err := validateAll(arg("meta", &meta), arg("project", &p), arg("", &in)); err != nil {
		return Result[board.Column]{}, err
	}

	own := board.ForProject(cols, p.ID)
	if _, exists := board.Find(own, in.ID); exists {
		return Result[board.Column]{}, domain.NewValidationError("id", "already exists")
	}

	c := board.Column{
		ID:        in.ID,
		ProjectID: p.ID,
		Name:      in.Name,
		Position:  board.NextPosition(own),
		CreatedAt: meta.Now,
	}
	return Result[board.Column]{
		Data: c,
		Events: []activity.NewEvent{
			projectEvent(meta, p, activity.TypeColumnAdded, map[string]any{
				"column_id": c.ID,
				"name":      c.Name,
				"position":  c.Position,
			}),
		},
	}, nil
}

// NewTag is the input of CreateTag. Name is normalized before use.
type NewTag struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name string    `json:"name" validate:"notblank"`
}

// Validate checks the NewTag schema.
func (in *NewTag) Validate() error {
	return domain.Validate(in)
}

// CreateTag creates a project tag under its normalized name. Tag names are
// unique per project after normalization.
func CreateTag(meta Meta, p project.Project, tags []tag.Tag, in NewTag) (Result[tag.Tag], error) {
	if err := validateAll(arg("meta", &meta), arg("project", &p), arg("", &in)); err != nil {
		return Result[tag.Tag]{}, err
	}

	t := tag.Tag{
		ID:        in.ID,
		ProjectID: p.ID,
		Name:      tag.Normalize(in.Name),
		CreatedAt: meta.Now,
	}
	if err := t.Validate(); err != nil {
		return Result[tag.Tag]{}, err
	}
	if existing, dup := tag.Find(tag.ForProject(tags, p.ID), t.Name); dup {
		return Result[tag.Tag]{}, domain.NewValidationError("name",
			fmt.Sprintf("tag %q already exists", existing.Name))
	}

	return Result[tag.Tag]{
		Data: t,
		Events: []activity.NewEvent{
			projectEvent(meta, p, activity.TypeTagCreated, map[string]any{
				"tag_id": t.ID,
				"name":   t.Name,
			}),
		},
	}, nil
}

// Package memstore is an in-memory implementation of the persistence ports.
//
// It is the reference adapter used by the scenario runner and by tests. It
// keeps the guarantees a production store must give the application layer:
// entities are validated on write, reads return copies, and ticket updates
// are guarded by an optimistic-concurrency check on updated_at.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/domain/user"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

// Compile-time check that Store implements ports.BoardStore.
var _ ports.BoardStore = (*Store)(nil)

type membershipKey struct {
	orgID  uuid.UUID
	userID uuid.UUID
}

type prefixKey struct {
	orgID  uuid.UUID
	prefix string
}

// Store holds orgs, users, memberships and project boards in memory.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	orgs        map[uuid.UUID]org.Org
	users       map[uuid.UUID]user.User
	memberships map[membershipKey]org.Membership

	projects map[uuid.UUID]project.Project
	prefixes map[prefixKey]uuid.UUID
	columns  map[uuid.UUID][]board.Column
	tags     map[uuid.UUID][]tag.Tag
	counters map[uuid.UUID]int

	tickets   map[uuid.UUID]ticket.Ticket
	byProject map[uuid.UUID][]uuid.UUID
	keys      map[string]uuid.UUID
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		orgs:        make(map[uuid.UUID]org.Org),
		users:       make(map[uuid.UUID]user.User),
		memberships: make(map[membershipKey]org.Membership),
		projects:    make(map[uuid.UUID]project.Project),
		prefixes:    make(map[prefixKey]uuid.UUID),
		columns:     make(map[uuid.UUID][]board.Column),
		tags:        make(map[uuid.UUID][]tag.Tag),
		counters:    make(map[uuid.UUID]int),
		tickets:     make(map[uuid.UUID]ticket.Ticket),
		byProject:   make(map[uuid.UUID][]uuid.UUID),
		keys:        make(map[string]uuid.UUID),
	}
}

// AddOrg stores an org.
func (s *Store) AddOrg(ctx context.Context, o org.Org) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orgs[o.ID]; exists {
		return fmt.Errorf("org %s: %w", o.ID, domain.ErrConflict)
	}
	s.orgs[o.ID] = o
	return nil
}

// AddUser stores a user. Emails are not required to be unique here.
func (s *Store) AddUser(ctx context.Context, u user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := u.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; exists {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrConflict)
	}
	s.users[u.ID] = u
	return nil
}

// AddMembership stores a membership of an existing user in an existing org.
// A user has at most one membership per org.
func (s *Store) AddMembership(ctx context.Context, m org.Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orgs[m.OrgID]; !ok {
		return fmt.Errorf("org %s: %w", m.OrgID, domain.ErrNotFound)
	}
	if _, ok := s.users[m.UserID]; !ok {
		return fmt.Errorf("user %s: %w", m.UserID, domain.ErrNotFound)
	}
	key := membershipKey{orgID: m.OrgID, userID: m.UserID}
	if _, exists := s.memberships[key]; exists {
		return fmt.Errorf("membership of %s in %s: %w", m.UserID, m.OrgID, domain.ErrConflict)
	}
	s.memberships[key] = m
	return nil
}

// GetMembership returns the membership of userID in orgID.
func (s *Store) GetMembership(ctx context.Context, orgID, userID uuid.UUID) (*org.Membership, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.memberships[membershipKey{orgID: orgID, userID: userID}]
	if !ok {
		return nil, fmt.Errorf("membership of %s in %s: %w", userID, orgID, domain.ErrNotFound)
	}
	return &m, nil
}

// GetProject returns a single project by ID.
func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// CreateProject stores a project and its initial columns atomically.
func (s *Store) CreateProject(ctx context.Context, p project.Project, cols []board.Column) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	for i := range cols {
		if err := cols[i].Validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		if cols[i].ProjectID != p.ID {
			return fmt.Errorf("column %s: %w", cols[i].ID, domain.ErrInvalidColumn)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orgs[p.OrgID]; !ok {
		return fmt.Errorf("org %s: %w", p.OrgID, domain.ErrNotFound)
	}
	if _, exists := s.projects[p.ID]; exists {
		return fmt.Errorf("project %s: %w", p.ID, domain.ErrConflict)
	}
	pk := prefixKey{orgID: p.OrgID, prefix: p.Prefix}
	if _, taken := s.prefixes[pk]; taken {
		return fmt.Errorf("prefix %q: %w", p.Prefix, domain.ErrConflict)
	}

	s.projects[p.ID] = p
	s.prefixes[pk] = p.ID
	s.columns[p.ID] = board.Sort(cols)
	return nil
}

// ListColumns returns the project's columns ordered by position.
func (s *Store) ListColumns(ctx context.Context, projectID uuid.UUID) ([]board.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.projects[projectID]; !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return slices.Clone(s.columns[projectID]), nil
}

// CreateColumn stores a new column. Positions are unique per project.
func (s *Store) CreateColumn(ctx context.Context, c board.Column) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[c.ProjectID]; !ok {
		return fmt.Errorf("project %s: %w", c.ProjectID, domain.ErrNotFound)
	}
	cols := s.columns[c.ProjectID]
	for _, existing := range cols {
		if existing.ID == c.ID || existing.Position == c.Position {
			return fmt.Errorf("column %s at position %d: %w", c.ID, c.Position, domain.ErrConflict)
		}
	}
	s.columns[c.ProjectID] = board.Sort(append(slices.Clone(cols), c))
	return nil
}

// ListTags returns the project's tags in creation order.
func (s *Store) ListTags(ctx context.Context, projectID uuid.UUID) ([]tag.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.projects[projectID]; !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return slices.Clone(s.tags[projectID]), nil
}

// CreateTag stores a new tag. Names are unique per project.
func (s *Store) CreateTag(ctx context.Context, t tag.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[t.ProjectID]; !ok {
		return fmt.Errorf("project %s: %w", t.ProjectID, domain.ErrNotFound)
	}
	tags := s.tags[t.ProjectID]
	if _, dup := tag.Find(tags, t.Name); dup {
		return fmt.Errorf("tag %q: %w", t.Name, domain.ErrConflict)
	}
	s.tags[t.ProjectID] = append(slices.Clone(tags), t)
	return nil
}

// NextTicketNumber reserves the project's next ticket number.
func (s *Store) NextTicketNumber(ctx context.Context, projectID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[projectID]; !ok {
		return 0, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	s.counters[projectID]++
	return s.counters[projectID], nil
}

// GetTicket returns a single ticket by ID.
func (s *Store) GetTicket(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	t = t.Clone()
	return &t, nil
}

// ListTickets returns the project's tickets ordered by key number.
func (s *Store) ListTickets(ctx context.Context, projectID uuid.UUID) ([]ticket.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.projects[projectID]; !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	ids := s.byProject[projectID]
	out := make([]ticket.Ticket, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.tickets[id].Clone())
	}
	slices.SortFunc(out, func(a, b ticket.Ticket) int {
		ka, _ := ticket.ParseKey(a.Key)
		kb, _ := ticket.ParseKey(b.Key)
		return cmp.Compare(ka.Number, kb.Number)
	})
	return out, nil
}

// CreateTicket stores a new ticket. Keys are unique.
func (s *Store) CreateTicket(ctx context.Context, t ticket.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefsLocked(&t); err != nil {
		return err
	}
	if _, exists := s.tickets[t.ID]; exists {
		return fmt.Errorf("ticket %s: %w", t.ID, domain.ErrConflict)
	}
	if _, taken := s.keys[t.Key]; taken {
		return fmt.Errorf("ticket key %s: %w", t.Key, domain.ErrConflict)
	}

	s.tickets[t.ID] = t.Clone()
	s.byProject[t.ProjectID] = append(s.byProject[t.ProjectID], t.ID)
	s.keys[t.Key] = t.ID
	return nil
}

// UpdateTicket replaces a stored ticket if its updated_at still equals
// expectedUpdatedAt. Key and project are immutable.
func (s *Store) UpdateTicket(ctx context.Context, t ticket.Ticket, expectedUpdatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tickets[t.ID]
	if !ok {
		return fmt.Errorf("ticket %s: %w", t.ID, domain.ErrNotFound)
	}
	if !current.UpdatedAt.Equal(expectedUpdatedAt) {
		return fmt.Errorf("ticket %s changed at %s: %w",
			t.ID, current.UpdatedAt.Format(time.RFC3339Nano), domain.ErrConflict)
	}
	if t.ProjectID != current.ProjectID || t.Key != current.Key {
		return domain.NewValidationError("key", "is immutable")
	}
	if err := s.checkRefsLocked(&t); err != nil {
		return err
	}

	s.tickets[t.ID] = t.Clone()
	return nil
}

// checkRefsLocked verifies that the ticket's project, column and tags exist
// and belong together. s.mu must be held.
func (s *Store) checkRefsLocked(t *ticket.Ticket) error {
	if _, ok := s.projects[t.ProjectID]; !ok {
		return fmt.Errorf("project %s: %w", t.ProjectID, domain.ErrNotFound)
	}
	if _, ok := board.Find(s.columns[t.ProjectID], t.StatusColumnID); !ok {
		return fmt.Errorf("column %s: %w", t.StatusColumnID, domain.ErrInvalidColumn)
	}
	tags := s.tags[t.ProjectID]
	for _, id := range t.TagIDs {
		if !slices.ContainsFunc(tags, func(tg tag.Tag) bool { return tg.ID == id }) {
			return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}

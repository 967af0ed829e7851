// Package domain contains the shared pieces of the ticket-tracking core:
// sentinel errors, the field-indexed ValidationError, and the declarative
// validator that every entity schema in the sub-packages (org, user, project,
// board, tag, ticket, activity) runs through.
//
// Entity-specific types and rules live in the sub-packages; state-changing
// operations live in domain/command.
package domain

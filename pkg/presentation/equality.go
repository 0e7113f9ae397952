/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentation compiles cross-statement constraints for composite
// proofs. Its equality compiler performs no cryptography: it derives witness
// indices from canonical attribute names so callers never hand-count
// positions across differently-shaped credentials.
package presentation

import (
	"github.com/pkg/errors"

	"github.com/docknetwork/anoncreds-go/pkg/attributes"
)

// WitnessRef points at one hidden attribute witness inside a composite
// proof: the statement it belongs to and the attribute's canonical index
// within that statement's own message structure.
type WitnessRef struct {
	StatementIndex int
	AttributeIndex int
}

// EqualityLink declares that all referenced witnesses take the same
// underlying value. Reference order follows the order in which statements
// were supplied; it has no cryptographic significance but is stable so
// engine inputs are reproducible.
type EqualityLink []WitnessRef

// StatementAttributes names the attributes of one proof statement that
// participate in an equality link, together with the statement's message
// structure for index resolution.
type StatementAttributes struct {
	// Statement is the statement's position within the composite proof.
	Statement int

	// Names are canonical attribute names within Structure.
	Names []string

	// Structure is the statement's own message structure.
	Structure attributes.Structure
}

// LinkEquality resolves each statement's attribute names to canonical
// indices and pairs them into one equality link. Separate attribute
// equalities (say, last name and SSN across the same credentials) are
// separate links, produced by separate calls.
func LinkEquality(stmts []StatementAttributes) (EqualityLink, error) {
	link := make(EqualityLink, 0, len(stmts))

	for _, s := range stmts {
		if len(s.Names) == 0 {
			return nil, errors.Errorf("statement %d: no attribute names to link", s.Statement)
		}

		indices, err := s.Structure.Indices(s.Names)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", s.Statement)
		}

		for _, idx := range indices {
			link = append(link, WitnessRef{
				StatementIndex: s.Statement,
				AttributeIndex: idx,
			})
		}
	}

	if len(link) < 2 {
		return nil, errors.New("an equality link requires at least two witness references")
	}

	return link, nil
}

// MetaStatements accumulates the equality links of one composite proof in
// the order they were compiled.
type MetaStatements struct {
	Links []EqualityLink
}

// AddWitnessEquality compiles one equality link and records it. Each call
// produces an independent link.
func (m *MetaStatements) AddWitnessEquality(stmts ...StatementAttributes) (EqualityLink, error) {
	link, err := LinkEquality(stmts)
	if err != nil {
		return nil, err
	}

	m.Links = append(m.Links, link)

	return link, nil
}

// Package testfixture provides a minimal, in-memory implementation of
// resonance.Graph used only by the root package's external tests to
// build small hand-authored molecules without depending on any
// particular collaborator's container type.
package testfixture

import (
	"github.com/TKanX/resonance"
	"github.com/TKanX/resonance/common"
)

// Atom is a plain-data implementation of resonance.Atom.
type Atom struct {
	IDVal      uint64
	ElementVal common.Element
	ChargeVal  int8
}

func (a Atom) ID() uint64              { return a.IDVal }
func (a Atom) Element() common.Element { return a.ElementVal }
func (a Atom) Charge() int8            { return a.ChargeVal }

// Bond is a plain-data implementation of resonance.Bond.
type Bond struct {
	IDVal    uint64
	OrderVal common.BondOrder
	A1, A2   uint64
}

func (b Bond) ID() uint64              { return b.IDVal }
func (b Bond) Order() common.BondOrder { return b.OrderVal }
func (b Bond) Atoms() (uint64, uint64) { return b.A1, b.A2 }

// Graph is a plain-data implementation of resonance.Graph, built
// incrementally with AddAtom and AddBond.
type Graph struct {
	atoms []Atom
	bonds []Bond
}

// New answers an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddAtom appends an atom with the given id, element, and formal
// charge, and answers its id for chaining into AddBond calls.
func (g *Graph) AddAtom(id uint64, element common.Element, charge int8) uint64 {
	g.atoms = append(g.atoms, Atom{IDVal: id, ElementVal: element, ChargeVal: charge})
	return id
}

// AddBond appends a bond with the given id, order, and endpoint atom
// ids.
func (g *Graph) AddBond(id uint64, order common.BondOrder, a1, a2 uint64) {
	g.bonds = append(g.bonds, Bond{IDVal: id, OrderVal: order, A1: a1, A2: a2})
}

// Atoms implements resonance.Graph.
func (g *Graph) Atoms() []resonance.Atom {
	out := make([]resonance.Atom, len(g.atoms))
	for i, a := range g.atoms {
		out[i] = a
	}
	return out
}

// Bonds implements resonance.Graph.
func (g *Graph) Bonds() []resonance.Bond {
	out := make([]resonance.Bond, len(g.bonds))
	for i, b := range g.bonds {
		out[i] = b
	}
	return out
}

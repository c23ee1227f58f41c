package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strconv"

// NodeID is a non-owning handle to a node of a host tree.
type NodeID uint64

// NoNode is the zero NodeID. It never denotes a valid node.
const NoNode NodeID = 0

func (id NodeID) String() string {
	if id == NoNode {
		return "<none>"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Host is the interface a tree host has to implement to be usable for
// styling. All methods must tolerate ids of nodes the host does not know
// (any more): Children returns nil, predicates return false, TypeOf returns
// an empty string.
type Host interface {
	Children(NodeID) []NodeID // children of a node, in document order
	IsContainer(NodeID) bool  // is this node a layout container?
	IsController(NodeID) bool // is this node a top-level controller?
	TypeOf(NodeID) string     // runtime type of the node
}

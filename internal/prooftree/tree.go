// Package prooftree holds the in-memory model of a proof session: entities
// (provable program units) owning proof items (verification conditions),
// each owning the prover attempts recorded against it.
//
// Nodes live in an arena and are addressed by stable NodeID indices. The
// tree is built once by the report loader and is read-only afterwards.
package prooftree

import "fmt"

// NodeID is a stable index into a Tree's node arena.
type NodeID int

// Kind tags the three node types that can appear in a proof tree.
type Kind int

const (
	// KindEntity is a provable program unit (subprogram, package, ...).
	KindEntity Kind = iota
	// KindProofItem is one verification condition under an entity.
	KindProofItem
	// KindAttempt is one prover invocation record under a proof item.
	KindAttempt
)

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindProofItem:
		return "proofItem"
	case KindAttempt:
		return "attempt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entity describes a provable program unit.
type Entity struct {
	Name string `json:"name"`
}

// ProofItem describes one verification condition and where it lives.
type ProofItem struct {
	SourceFile string `json:"sourceFile"`
	Line       int    `json:"line,omitempty"`
	Check      string `json:"check,omitempty"`
}

// Attempt is one prover invocation record.
type Attempt struct {
	Prover string  `json:"prover"`
	Result Outcome `json:"result"`
	// Time is the elapsed prover time in seconds. Always non-negative.
	Time float64 `json:"time"`
	// Steps is the raw prover-reported effort count. Always non-negative.
	// Raw counts are not comparable across provers; see analysis.Normalizer.
	Steps int64 `json:"steps"`
}

type node struct {
	kind     Kind
	entity   Entity
	item     ProofItem
	attempt  Attempt
	children []NodeID
}

// Tree is an arena-backed proof tree. The zero value is not usable; use New.
type Tree struct {
	nodes []node
	roots []NodeID
}

// New returns an empty proof tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddEntity appends a root entity node and returns its id.
func (t *Tree) AddEntity(e Entity) NodeID {
	id := t.add(node{kind: KindEntity, entity: e})
	t.roots = append(t.roots, id)
	return id
}

// AddItem appends a proof item under the given entity.
// The parent must be an entity node.
func (t *Tree) AddItem(parent NodeID, item ProofItem) NodeID {
	t.mustKind(parent, KindEntity)
	id := t.add(node{kind: KindProofItem, item: item})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// AddAttempt appends an attempt under the given proof item.
// The parent must be a proof item node; time and steps must be non-negative.
func (t *Tree) AddAttempt(parent NodeID, a Attempt) NodeID {
	t.mustKind(parent, KindProofItem)
	if a.Time < 0 {
		panic(fmt.Sprintf("prooftree: negative attempt time %v for prover %q", a.Time, a.Prover))
	}
	if a.Steps < 0 {
		panic(fmt.Sprintf("prooftree: negative attempt steps %d for prover %q", a.Steps, a.Prover))
	}
	id := t.add(node{kind: KindAttempt, attempt: a})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Entities returns the ids of all root entity nodes, in insertion order.
func (t *Tree) Entities() []NodeID {
	return t.roots
}

// Items returns the proof item ids under an entity, in insertion order.
func (t *Tree) Items(entity NodeID) []NodeID {
	t.mustKind(entity, KindEntity)
	return t.nodes[entity].children
}

// Attempts returns the attempt ids under a proof item, in invocation order.
func (t *Tree) Attempts(item NodeID) []NodeID {
	t.mustKind(item, KindProofItem)
	return t.nodes[item].children
}

// Kind returns the kind tag of a node.
func (t *Tree) Kind(id NodeID) Kind {
	t.mustValid(id)
	return t.nodes[id].kind
}

// Entity returns the entity payload of an entity node.
func (t *Tree) Entity(id NodeID) Entity {
	t.mustKind(id, KindEntity)
	return t.nodes[id].entity
}

// Item returns the proof item payload of a proof item node.
func (t *Tree) Item(id NodeID) ProofItem {
	t.mustKind(id, KindProofItem)
	return t.nodes[id].item
}

// Attempt returns the attempt payload of an attempt node.
func (t *Tree) Attempt(id NodeID) Attempt {
	t.mustKind(id, KindAttempt)
	return t.nodes[id].attempt
}

func (t *Tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) mustValid(id NodeID) {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("prooftree: node id %d out of range [0,%d)", id, len(t.nodes)))
	}
}

// mustKind asserts the node's kind tag. A mismatch means the caller broke the
// ownership invariants of the tree, which is not recoverable.
func (t *Tree) mustKind(id NodeID, want Kind) {
	t.mustValid(id)
	if got := t.nodes[id].kind; got != want {
		panic(fmt.Sprintf("prooftree: node %d is %s, want %s", id, got, want))
	}
}

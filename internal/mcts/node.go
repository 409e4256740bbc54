package mcts

import (
	"math"
	"math/bits"

	"scorefour/internal/bitset"
	"scorefour/internal/position"
)

// node is one arena slot. parent is -1 for the root. children holds up to
// maxChildren indices into the same arena, populated left-to-right as moves
// are expanded; childCt is the number populated so far, which may be
// less than the position's legal-move count until expansion catches up.
type node struct {
	b, w     uint64
	move     uint64 // the move bit that created this node; 0 at the root
	parent   int32
	side     position.Side // side to move at this node
	terminal position.Result
	visits   uint64
	reward   float64
	children [maxChildren]int32
	childCt  int8
}

func newRootNode(pos position.Position, side position.Side) node {
	return node{b: pos.B, w: pos.W, parent: -1, side: side, terminal: pos.Result()}
}

// arena is a bump allocator: nodes are appended up to cap(nodes) and never
// freed or reused within one search.
type arena struct {
	nodes []node
}

func newArena(capacity int, root node) *arena {
	nodes := make([]node, 1, capacity)
	nodes[0] = root
	return &arena{nodes: nodes}
}

func (a *arena) full() bool {
	return len(a.nodes) >= cap(a.nodes)
}

func (a *arena) alloc(n node) (int32, bool) {
	if a.full() {
		return 0, false
	}
	a.nodes = append(a.nodes, n)
	return int32(len(a.nodes) - 1), true
}

func (a *arena) at(i int32) *node {
	return &a.nodes[i]
}

func hasChild(a *arena, n *node, move uint64) bool {
	for i := 0; i < int(n.childCt); i++ {
		if a.at(n.children[i]).move == move {
			return true
		}
	}
	return false
}

// selectLeaf walks from the root choosing, at every fully-expanded internal
// node, the child maximizing UCT (any zero-visit child is taken immediately,
// left-to-right). It stops at the first node that either has unexpanded
// legal moves and arena room (expandable, second return true), is terminal,
// or has no children and cannot expand (arena exhausted).
func selectLeaf(a *arena, c float64) (int32, bool) {
	idx := int32(0)
	for {
		n := a.at(idx)
		if n.terminal != position.Ongoing {
			return idx, false
		}
		legalCount := bits.OnesCount64((position.Position{B: n.b, W: n.w}).LegalMask())
		if int(n.childCt) < legalCount && !a.full() {
			return idx, true
		}
		if n.childCt == 0 {
			return idx, false
		}
		idx = bestUCTChild(a, n, c)
	}
}

func bestUCTChild(a *arena, n *node, c float64) int32 {
	best := n.children[0]
	bestScore := math.Inf(-1)
	for i := 0; i < int(n.childCt); i++ {
		ci := n.children[i]
		cn := a.at(ci)
		if cn.visits == 0 {
			return ci
		}
		score := cn.reward/float64(cn.visits) + c*math.Sqrt(math.Log(float64(n.visits)+1)/float64(cn.visits))
		if score > bestScore {
			bestScore = score
			best = ci
		}
	}
	return best
}

// expand adds one previously-untried child of leaf, chosen by scanning the
// leaf's legal moves starting at a random offset (so which move is added
// first is randomized, while scan order among the rest stays cyclic).
func expand(a *arena, leaf int32, randStart func(n int) int) (int32, bool) {
	n := a.at(leaf)
	pos := position.Position{B: n.b, W: n.w}
	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return 0, false
	}
	start := randStart(len(legal))
	for k := 0; k < len(legal); k++ {
		move := legal[(start+k)%len(legal)]
		if hasChild(a, n, move) {
			continue
		}
		child := position.Apply(pos, n.side, move)
		terminal := position.Ongoing
		switch {
		case position.IncrementalWin(child, n.side, move):
			if n.side == position.Black {
				terminal = position.BlackWin
			} else {
				terminal = position.WhiteWin
			}
		case child.LegalMask() == 0:
			terminal = position.Draw
		}
		idx, ok := a.alloc(node{b: child.B, w: child.W, move: move, parent: leaf, side: n.side.Opponent(), terminal: terminal})
		if !ok {
			return 0, false
		}
		n = a.at(leaf) // alloc may have reallocated the backing array
		n.children[n.childCt] = idx
		n.childCt++
		return idx, true
	}
	return 0, false
}

// backprop increments the visit count of every node from simNode up to the
// root and adds reward to its accumulated reward, unchanged in sign: the reward is already
// expressed relative to the fixed root player, so no per-ply negation
// applies. It returns the index of the direct root child on this path, or
// -1 if simNode is the root itself.
func backprop(a *arena, simNode int32, reward float64) int32 {
	rootChild := int32(-1)
	idx := simNode
	for idx != -1 {
		n := a.at(idx)
		n.visits++
		n.reward += reward
		if n.parent == 0 {
			rootChild = idx
		}
		idx = n.parent
	}
	return rootChild
}

type rootChildStat struct {
	move   uint64
	visits uint64
	reward float64
}

func collectRootStats(a *arena) []rootChildStat {
	root := a.at(0)
	stats := make([]rootChildStat, 0, root.childCt)
	for i := 0; i < int(root.childCt); i++ {
		c := a.at(root.children[i])
		stats = append(stats, rootChildStat{move: c.move, visits: c.visits, reward: c.reward})
	}
	return stats
}

func columnIndex(move uint64) int {
	return bitset.IndexOf(move) % 16
}

package tree

import (
	"sort"
	"time"

	"otonavi/internal/domain"
)

// Build converts a flat comment list into ordered root nodes. Comments are
// indexed by id and linked strictly parent-to-child, so malformed parent
// references cannot produce a traversable cycle; a comment whose parent is
// missing from the set is promoted to a root. Roots are ordered newest first,
// replies at every depth oldest first. Equal timestamps fall back to id order
// so rebuilds are deterministic regardless of input order.
func Build(comments []domain.SerializedComment) []domain.CommentNode {
	index := make(map[string]domain.SerializedComment, len(comments))
	for _, c := range comments {
		index[c.ID] = c
	}

	children := make(map[string][]string)
	var rootIDs []string
	for _, c := range comments {
		if c.ParentID != nil {
			if _, ok := index[*c.ParentID]; ok {
				children[*c.ParentID] = append(children[*c.ParentID], c.ID)
				continue
			}
		}
		rootIDs = append(rootIDs, c.ID)
	}

	sort.SliceStable(rootIDs, func(i, j int) bool {
		a, b := index[rootIDs[i]], index[rootIDs[j]]
		at, bt := parseCreatedAt(a.CreatedAt), parseCreatedAt(b.CreatedAt)
		if !at.Equal(bt) {
			return at.After(bt)
		}
		return a.ID < b.ID
	})

	roots := make([]domain.CommentNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, assemble(id, index, children))
	}
	return roots
}

// assemble builds a node and its subtree depth-first, sorting each child list
// oldest first before descending.
func assemble(id string, index map[string]domain.SerializedComment, children map[string][]string) domain.CommentNode {
	node := domain.CommentNode{SerializedComment: index[id]}

	childIDs := children[id]
	sort.SliceStable(childIDs, func(i, j int) bool {
		a, b := index[childIDs[i]], index[childIDs[j]]
		at, bt := parseCreatedAt(a.CreatedAt), parseCreatedAt(b.CreatedAt)
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		return a.ID < b.ID
	})

	for _, childID := range childIDs {
		node.Children = append(node.Children, assemble(childID, index, children))
	}
	return node
}

func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Count returns the total number of nodes in the forest.
func Count(nodes []domain.CommentNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + Count(n.Children)
	}
	return total
}

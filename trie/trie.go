// Package trie implements the prefix tree used as the game dictionary.
// Lookups are case-insensitive; every rune is lowercased before it is used
// as an arc label.
package trie

import (
	"strings"
	"unicode"
)

type node struct {
	arcs      map[rune]*node
	endOfWord bool
}

func newNode() *node {
	return &node{arcs: make(map[rune]*node)}
}

func (n *node) child(r rune) *node {
	return n.arcs[unicode.ToLower(r)]
}

func (n *node) addChild(r rune) *node {
	c := newNode()
	n.arcs[unicode.ToLower(r)] = c
	return c
}

func (n *node) removeChild(r rune) {
	delete(n.arcs, unicode.ToLower(r))
}

// count returns the number of nodes below n, not counting n itself.
func (n *node) count() int {
	c := len(n.arcs)
	for _, a := range n.arcs {
		c += a.count()
	}
	return c
}

// Trie is a prefix tree of words.
type Trie struct {
	root *node
}

func New() *Trie {
	return &Trie{root: newNode()}
}

// FromWords builds a trie out of a word list.
func FromWords(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(strings.ToLower(w))
	}
	return t
}

func blank(word string) bool {
	return strings.TrimSpace(word) == ""
}

// Insert adds a word. Blank words are ignored.
func (t *Trie) Insert(word string) {
	if blank(word) {
		return
	}
	cur := t.root
	for _, r := range word {
		next := cur.child(r)
		if next == nil {
			next = cur.addChild(r)
		}
		cur = next
	}
	cur.endOfWord = true
}

// Search returns true only if the whole word was inserted; a word that is
// merely a prefix of another one is not found.
func (t *Trie) Search(word string) bool {
	if blank(word) {
		return false
	}
	cur := t.root
	for _, r := range word {
		cur = cur.child(r)
		if cur == nil {
			return false
		}
	}
	return cur.endOfWord
}

// Delete removes a word and prunes the nodes no other word depends on.
// It returns false if the path for the word does not exist.
func (t *Trie) Delete(word string) bool {
	if blank(word) {
		return false
	}
	runes := []rune(word)
	path := make([]*node, 0, len(runes)+1)
	path = append(path, t.root)

	// keyIdx is the index in path of the deepest node that must survive:
	// one that branches or terminates another word.
	keyIdx := 0
	cur := t.root
	for i, r := range runes {
		if len(cur.arcs) > 1 || cur.endOfWord {
			keyIdx = i
		}
		cur = cur.child(r)
		if cur == nil {
			return false
		}
		path = append(path, cur)
	}
	cur.endOfWord = false
	if len(cur.arcs) == 0 {
		path[keyIdx].removeChild(runes[keyIdx])
	}
	return true
}

// NodeCount returns the number of nodes in the trie, excluding the root.
func (t *Trie) NodeCount() int {
	return t.root.count()
}

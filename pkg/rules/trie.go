package rules

// trie is a byte trie over the eager literals of all rules. The root fans
// out through a full array so the first byte is dispatched without search.
type trie struct {
	root  [256]*trieNode
	nodes int
}

type trieNode struct {
	children map[byte]*trieNode
	terminal bool
	rule     int
}

// insert adds lit for rule. An existing terminal keeps its rule, so the
// first rule to insert a literal owns it. It reports whether lit was new.
func (t *trie) insert(lit string, rule int) bool {
	if lit == "" {
		return false
	}
	n := t.root[lit[0]]
	if n == nil {
		n = &trieNode{}
		t.root[lit[0]] = n
		t.nodes++
	}
	for i := 1; i < len(lit); i++ {
		child := n.children[lit[i]]
		if child == nil {
			if n.children == nil {
				n.children = make(map[byte]*trieNode)
			}
			child = &trieNode{}
			n.children[lit[i]] = child
			t.nodes++
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	n.rule = rule
	return true
}

// longest walks s from pos and returns the longest literal found there and
// its rule. length is 0 when nothing matches.
func (t *trie) longest(s string, pos int) (length, rule int) {
	n := t.root[s[pos]]
	for i := pos; n != nil; {
		if n.terminal {
			length, rule = i-pos+1, n.rule
		}
		i++
		if i >= len(s) {
			break
		}
		n = n.children[s[i]]
	}
	return length, rule
}

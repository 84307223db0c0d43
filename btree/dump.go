package btree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type nodeids[T any] struct {
	idTable map[node[T]]int
	max     int
}

func newtable[T any]() *nodeids[T] {
	return &nodeids[T]{idTable: make(map[node[T]]int), max: 1}
}

func (ids *nodeids[T]) alloc(n node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Branch nodes show their width and subtree size,
// leaves their entries; the leaf chain is drawn with dashed edges.
func (t *Tree[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t == nil || t.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	dotNode[T](w, t.root, ids)
	for l := firstLeaf[T](t.root); l != nil && l.next != nil; l = l.next {
		fmt.Fprintf(w, "\"%d\" -> \"%d\" [style=dashed,constraint=false];\n",
			ids.alloc(node[T](l)), ids.alloc(node[T](l.next)))
	}
	io.WriteString(w, "}\n")
}

func dotNode[T any](w io.Writer, n node[T], ids *nodeids[T]) {
	id := ids.alloc(n)
	if n.isLeaf() {
		l := n.(*leaf[T])
		fmt.Fprintf(w, "\"%d\" [label=\"%d\\n%v\" shape=box,style=filled,fillcolor=lightgrey];\n",
			id, len(l.entries), l.entries)
		return
	}
	b := n.(*branch[T])
	fmt.Fprintf(w, "\"%d\" [label=\"w=%d s=%d\"];\n", id, len(b.children), b.count())
	for _, child := range b.children {
		dotNode[T](w, child, ids)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", id, ids.alloc(child))
	}
}

// Dump writes an indented structural view of the tree. When w is an
// interactive terminal, branch and leaf lines are colorized and leaf entry
// listings are truncated to the terminal width.
func (t *Tree[T]) Dump(w io.Writer) {
	linelen := 0
	branchco := fmt.Sprintf
	leafco := fmt.Sprintf
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			linelen = cols
		}
		branchco = color.New(color.FgCyan).Sprintf
		leafco = color.New(color.FgGreen).Sprintf
	}
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<no tree>")
		return
	}
	dumpNode[T](w, t.root, 0, linelen, branchco, leafco)
}

func dumpNode[T any](w io.Writer, n node[T], depth, linelen int,
	branchco, leafco func(format string, a ...interface{}) string) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n.isLeaf() {
		l := n.(*leaf[T])
		line := indent + leafco("leaf w=%d %v", len(l.entries), l.entries)
		if linelen > 0 && len(line) > linelen {
			line = line[:linelen-1] + "…"
		}
		fmt.Fprintln(w, line)
		return
	}
	b := n.(*branch[T])
	fmt.Fprintln(w, indent+branchco("branch w=%d size=%d sizes=%v", len(b.children), b.count(), b.sizes))
	for _, child := range b.children {
		dumpNode[T](w, child, depth+1, linelen, branchco, leafco)
	}
}

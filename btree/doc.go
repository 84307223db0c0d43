/*
Package btree implements the ordered-collection engine shared by the
collection façades of package ordered.

The engine is an order-statistic B+ tree with a fixed branching factor of 32.
All entries live in leaf nodes, which form a doubly linked list in
left-to-right order. Branch nodes carry, per child, the first entry of the
child's subtree (the pivot) and the cumulative item count of the child prefix.
This dual bookkeeping lets one node layout answer both key queries
("where is k?") and positional queries ("what is the i-th item?") in
O(log₃₂ n).

One generic tree serves three collection flavors:
  - an indexable sequence (entries addressed purely by position),
  - an ordered key set (entries are keys),
  - an ordered key→value map (entries are key/value pairs).

The flavor is determined entirely by the entry type and the comparator the
caller supplies per operation; the engine never inspects entries except
through that comparator.

Positions may be negative, counting from the end (-1 is the last item).
Key searches that miss return the insertion point encoded as
-(insertion index) - 1, so callers can both test for absence and recover
where an insert would land.

The engine is not safe for concurrent use. Iterators are live views into the
leaf chain, not snapshots: mutating the tree while an iterator is outstanding
is a precondition violation and invalidates the iterator's future results.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

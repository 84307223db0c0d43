/*
Package ordered provides sorted, indexable collections: an indexable sequence
(List), an ordered key set (Set) and an ordered key→value map (Map).

All three are thin façades over one shared engine, an order-statistic B+ tree
with branching factor 32 (package btree). The engine stores entries in a
doubly linked chain of leaves and keeps, per branch, both routing keys and
cumulative subtree sizes. One node layout and one algorithm set therefore
answer key queries and positional queries alike:

	Operation       |  ordered collection  |  Go slice / map
	----------------+----------------------+----------------
	Lookup by key   |  O(log n)            |  O(1) (map)
	k-th item       |  O(log n)            |  O(1) (slice)
	Sorted insert   |  O(log n)            |  O(n)
	Sorted delete   |  O(log n)            |  O(n)
	Iterate         |  O(n)                |  O(n)
	Rank of a key   |  O(log n)            |  n/a

For use cases that mix ordered iteration with positional access, such as
editors or schedulers, the collections keep stable performance where slices
or maps degrade or need auxiliary indexes.

Positions accepted by the collections may be negative, counting from the
end, so list.At(-1) is the last item. Key searches that miss report the
insertion point encoded as -(index) - 1 (see btree.NotFound).

The collections are not safe for concurrent use; callers needing concurrency
must serialize access externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'ordered'. Inside methods of the generic
// collection types the identifier T is taken by the type parameter, so
// those use this helper instead of T().
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

/*
Package recload provides API helpers to load newline-separated record files
as batches for the ordered collections.

Loading is done in fragments by a background goroutine while preserving a
synchronous Load API: the returned Batch can be handed around right away and
Records will synchronize with the loader. Fragment completion is broadcast,
so interactive clients may subscribe for progress.

The collections themselves stay single-threaded: a batch is fully
materialized before it is handed to List.Assign or Set.Assign.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package recload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

/*
Package collection models the files of a data collection as an ordtree.Tree.

Entries of a collection are either directories or files. Both are
identified by their slash-separated path, starting with a slash ("/dir/a.txt").
The parent of an entry is the path of its directory; entries at the top
level have parent ordtree.RootID.

File trees are usually created from a listing (see ParseListing), then
turned into a panel state (see ToPanelState) which carries the display state
of a file browser: which directories are collapsed and which entries are
selected. Panel states are updated by the pure function Reduce, suitable for
use with package store.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package collection

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// ErrMalformedListing signals a listing line which cannot be interpreted.
var ErrMalformedListing = errors.New("collection: malformed listing")

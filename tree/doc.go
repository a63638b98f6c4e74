/*
Package tree implements the node storage for scene trees.

Nodes live in an arena of generational slots. A node is referenced by an ID,
which is a pair of slot index and generation. Parents own their children;
the link from a child to its parent is a weak ID only. Once a node is removed
from the arena its slot generation is bumped, and every outstanding ID for
the old node will fail to resolve. This replaces the raw parent pointers of a
pointer-linked tree, and lets clients hold on to IDs of nodes which may have
been destroyed in the meantime.

All operations are synchronous and are not safe for concurrent use. Scene
trees are manipulated from the UI thread only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shelltk.tree'.
func tracer() tracing.Trace {
	return tracing.Select("shelltk.tree")
}

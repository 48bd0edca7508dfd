package dom

import "github.com/vango-dev/vango-ui/pkg/vango"

// DocumentContext carries the session Document down the owner tree so
// components can subscribe to document-level events without threading it
// through every constructor.
var DocumentContext = vango.CreateContext[*Document](nil)

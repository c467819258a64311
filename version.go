package cubewalk

import _ "embed"

// Version is the release of the library and the cubewalk binary.
//
//go:embed VERSION
var Version string

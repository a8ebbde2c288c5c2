package scaffold

import "embed"

// scaffoldFS carries the template sets compiled into the binary. Project
// sets are walked whole; view sets are rendered file by file into the
// screen's stub paths.
//
//go:embed all:templates
var scaffoldFS embed.FS

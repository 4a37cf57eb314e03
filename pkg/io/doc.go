// Package io reads layout requests from TOML or JSON files and writes
// generated layouts as JSON.
//
// # Request files
//
// A request file holds a [layout.Config] at the top level, plus an optional
// options table and best-of-N count:
//
//	content_type = "web"
//	vibe_id      = "minimal"
//	seed         = 0.42
//	count        = 10
//
//	[canvas_size]
//	width  = 1200
//	height = 800
//
//	[colors]
//	background = "#ffffff"
//	text       = "#000000"
//
//	[content]
//	heading    = "Simplicity"
//	subheading = "Less is more"
//
//	[options]
//	max_iterations = 100
//	min_score      = 85
//
// The JSON form uses the same keys. Unknown keys are rejected so typos
// surface instead of silently falling back to defaults.
//
// The format is chosen by extension: ".toml" or ".json". Reading from
// standard input ("-") expects JSON.
//
// # Export
//
// [WriteLayout] and [WriteLayoutFile] emit indented JSON, the data
// contract consumed by renderers.
package io

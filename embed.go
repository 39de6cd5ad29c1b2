package studiosite

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// analytics.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

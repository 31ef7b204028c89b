package model

// Package model defines domain data structures used across the app: news
// articles shown as cards and the feed status that drives the status line.
// Articles are plain values created in bulk by a fetch and never mutated.

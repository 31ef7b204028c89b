package platform

// Package platform contains OS/platform integration: resolving the per-user
// config location and filesystem helpers used by the config store.

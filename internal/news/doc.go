package news

// Package news implements the headline fetcher for the newsapi.org
// top-headlines endpoint. Fetch is the forgiving entry point used by the UI:
// any failure yields an empty list. TopHeadlines returns the error for callers
// that want to report it.

package model

// CatalogEntry is one header registered in the header catalog.
type CatalogEntry struct {
	// Key is the slash-separated path of the header below its root.
	Key string
	// Root is the library root the header was found under.
	Root Path
	// Path is the canonical absolute path of the header.
	Path Path
}

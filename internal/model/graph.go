package model

// GraphNode is a header and the project headers it includes.
type GraphNode struct {
	Path     Path   `yaml:"path"`
	Includes []Path `yaml:"includes,omitempty"`
}

// IncludeGraph is the display form of an include graph.
type IncludeGraph struct {
	// Entry is the header the graph was traced from; empty for a whole
	// catalog graph.
	Entry Path        `yaml:"entry,omitempty"`
	Nodes []GraphNode `yaml:"nodes"`
	// Order lists headers reachable from Entry, each after its includes.
	Order []Path `yaml:"order,omitempty"`
}

package domain

import (
	"log/slog"

	m "unosolo.dev/pkg/unosolo/internal/model"
)

// Listener observes the engine. Every method is optional in spirit: the
// engine never depends on what a listener does, and NopListener is used
// when none is configured.
type Listener interface {
	// CatalogRegistered is called when a header claims its catalog key.
	CatalogRegistered(entry m.CatalogEntry)
	// CatalogShadowed is called when a later root offers a key that an
	// earlier root already claimed.
	CatalogShadowed(entry m.CatalogEntry, winner m.CatalogEntry)
	// IncludeResolved is called the first time a directive line in file is
	// resolved to a project header.
	IncludeResolved(file m.Path, directive m.Directive, target m.Path)
	// IncludeExternal is called for bracketed includes that are left as is.
	IncludeExternal(file m.Path, directive m.Directive)
	// IncludeElided is called when an include of an already expanded header
	// is dropped.
	IncludeElided(file m.Path, target m.Path)
	// FileExpanded is called once the content of file has been fully emitted.
	FileExpanded(file m.Path)
}

// NopListener ignores every event.
type NopListener struct{}

// CatalogRegistered does nothing.
func (NopListener) CatalogRegistered(m.CatalogEntry) {}

// CatalogShadowed does nothing.
func (NopListener) CatalogShadowed(m.CatalogEntry, m.CatalogEntry) {}

// IncludeResolved does nothing.
func (NopListener) IncludeResolved(m.Path, m.Directive, m.Path) {}

// IncludeExternal does nothing.
func (NopListener) IncludeExternal(m.Path, m.Directive) {}

// IncludeElided does nothing.
func (NopListener) IncludeElided(m.Path, m.Path) {}

// FileExpanded does nothing.
func (NopListener) FileExpanded(m.Path) {}

// LogListener reports engine events as debug records on a slog.Logger.
type LogListener struct {
	logger *slog.Logger
}

// NewLogListener returns a listener writing to logger. A nil logger means
// whatever slog.Default is at the time of each event.
func NewLogListener(logger *slog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}

	return l.logger
}

// CatalogRegistered logs the key, root and path of the new entry.
func (l *LogListener) CatalogRegistered(entry m.CatalogEntry) {
	l.log().Debug("catalog entry", "key", entry.Key, "root", entry.Root, "path", entry.Path)
}

// CatalogShadowed logs the losing entry together with the winning path.
func (l *LogListener) CatalogShadowed(entry m.CatalogEntry, winner m.CatalogEntry) {
	l.log().Debug("catalog entry shadowed",
		"key", entry.Key, "root", entry.Root, "path", entry.Path, "winner", winner.Path)
}

// IncludeResolved logs the directive and the header it resolved to.
func (l *LogListener) IncludeResolved(file m.Path, directive m.Directive, target m.Path) {
	l.log().Debug("include resolved",
		"file", file, "kind", directive.Kind, "target", directive.Target, "path", target)
}

// IncludeExternal logs the target of an include left in the output.
func (l *LogListener) IncludeExternal(file m.Path, directive m.Directive) {
	l.log().Debug("external include kept", "file", file, "target", directive.Target)
}

// IncludeElided logs an include dropped because its header was already expanded.
func (l *LogListener) IncludeElided(file m.Path, target m.Path) {
	l.log().Debug("include elided", "file", file, "path", target)
}

// FileExpanded logs a header whose content has been fully emitted.
func (l *LogListener) FileExpanded(file m.Path) {
	l.log().Debug("expanded", "path", file)
}

func listenerOrNop(l Listener) Listener {
	if l == nil {
		return NopListener{}
	}

	return l
}

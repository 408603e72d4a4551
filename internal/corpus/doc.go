// Package corpus reads the on-disk template library.
//
// Templates live in a fixed four-level directory hierarchy mirroring their
// identifier:
//
//	<root>/<language>/<framework>/<category>/<name>/
//	    template.json   metadata record (required)
//	    files/          code files, arbitrary nesting (preferred)
//	    code.md         single-file fallback when files/ is absent
//	    README.md       human documentation (optional)
//
// The template identifier is the slash-joined path relative to the root,
// for example "typescript/nextjs/auth/nextauth-google".
//
// # Identifier Safety
//
// Every identifier is parsed before it touches the filesystem. Each of the
// four segments must match [a-zA-Z0-9_-]+, which rules out "..", absolute
// paths and separators inside a segment:
//
//	id, err := corpus.ParseID("typescript/nextjs/auth/nextauth-google")
//	if err != nil {
//	    // corpus.ErrInvalidIdentifier
//	}
//	dir := id.Path(root) // always below root
//
// # Loading
//
// Store caches metadata records in memory after the first read. Code bodies
// are read from disk on every request:
//
//	store := corpus.NewStore("/srv/templates", logger)
//
//	rec, err := store.LoadRecord("typescript/nextjs/auth/nextauth-google")
//	code, err := store.LoadCode("typescript/nextjs/auth/nextauth-google")
//
// # Error Handling
//
// Failures are classified with sentinel errors so callers can map them to
// distinct protocol errors:
//
//	errors.Is(err, corpus.ErrInvalidIdentifier) // malformed id
//	errors.Is(err, corpus.ErrNotFound)          // no such template
//	errors.Is(err, corpus.ErrInvalidRecord)     // metadata unreadable or invalid
//
// # Validation
//
// Store.Validate walks the whole corpus and reports findings for corpus
// maintainers: invalid records, declared-but-missing files, dangling
// relatedTemplates references and templates without code or documentation.
package corpus

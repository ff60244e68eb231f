// Package assets locates the TrueType font embedded into generated PDFs.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - Go fonts compiled into the binary (golang.org/x/image)
//	    ├── FilesystemLoader  - a .ttf file on disk
//	    └── Resolver          - picks one of the above from a font source string
//
// A font source is either an embedded font name ("goregular", "gomono") or a
// file path. Anything containing a path separator or ending in .ttf is a path.
// An empty source selects DefaultFontName.
//
// # Failure Modes
//
// There is no fallback between loaders: a configured file that cannot be read
// is an error, never a silent switch to the embedded default.
package assets

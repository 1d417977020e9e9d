package analysis

import (
	"path/filepath"
	"strings"
)

// specExtension marks specification files; they are the preferred display
// name for a unit over its body or separate-unit spellings.
const specExtension = ".ads"

// ResolveSourceName folds one file-name candidate into the representative
// name held so far for a logical source file. It is applied left-to-right
// over all candidate spellings in the order aggregation encounters them:
//
//  1. an empty current adopts the candidate,
//  2. a strictly shorter candidate wins (filters out synthetic
//     separate-unit spellings),
//  3. a spec-file candidate (.ads, case-insensitive) wins,
//  4. otherwise current is kept.
//
// Only the incoming candidate is inspected; the held name's own spec status
// is never re-checked. A later, shorter body name can therefore displace an
// already-adopted spec name purely on length. That asymmetry is long-standing
// observable behavior and is kept as is.
func ResolveSourceName(current, candidate string) string {
	if current == "" {
		return candidate
	}
	if len(candidate) < len(current) {
		return candidate
	}
	if isSpecFile(candidate) {
		return candidate
	}
	return current
}

func isSpecFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), specExtension)
}

// FileKey derives the logical file key for a source file name: the lowercased
// basename with the extension and any child/separate-unit suffix (from the
// first '-' on) stripped. Spec, body and separate spellings of one unit all
// map to the same key: "pkg.ads", "pkg.adb" and "pkg-child.adb" -> "pkg".
func FileKey(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[:i]
	}
	return strings.ToLower(base)
}

// Package schemas loads and caches the versioned OSSA JSON Schema documents
// that structural validation compiles against. Schemas ship embedded in the
// binary; the repository only ever reads them.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/ossa-dev/ossa/pkg/logger"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var repoLog = logger.New("schemas:repository")

// SchemaNotFoundError reports a requested schema version with no
// corresponding schema document. Its message is the contract callers use to
// distinguish "version does not exist" from genuine I/O failures.
type SchemaNotFoundError struct {
	Version string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("Unsupported schema version %q: schema not found", e.Version)
}

// Repository caches parsed and compiled schema documents per version. Each
// Repository owns its caches; there is no process-global state, so tests can
// isolate themselves with New or Clear.
//
// Population follows compute-once-publish: concurrent first requests for the
// same version may parse redundantly and the later write wins. Schema content
// per version is immutable, so the duplicate work is harmless and no lock is
// held during parsing.
type Repository struct {
	mu       sync.RWMutex
	docs     map[string]map[string]any
	compiled map[string]*jsonschema.Schema
}

// NewRepository creates an empty schema repository.
func NewRepository() *Repository {
	return &Repository{
		docs:     make(map[string]map[string]any),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// GetSchema returns the parsed schema document for a version. Repeated calls
// for the same version return the same cached object until Clear is called.
// A version with no schema document fails with *SchemaNotFoundError.
func (r *Repository) GetSchema(version string) (map[string]any, error) {
	key := canonicalVersion(version)
	if key == "" {
		repoLog.Printf("unparseable schema version requested: %q", version)
		return nil, &SchemaNotFoundError{Version: version}
	}

	r.mu.RLock()
	doc, ok := r.docs[key]
	r.mu.RUnlock()
	if ok {
		return doc, nil
	}

	data, err := schemaFS.ReadFile("schemas/v" + key + ".json")
	if err != nil {
		repoLog.Printf("no schema document for version %s", key)
		return nil, &SchemaNotFoundError{Version: version}
	}

	doc = make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		// Embedded schemas are validated at build time; a decode failure here
		// is a genuinely exceptional condition, not a missing version.
		return nil, fmt.Errorf("decoding schema %s: %w", key, err)
	}

	r.mu.Lock()
	r.docs[key] = doc
	doc = r.docs[key]
	r.mu.Unlock()

	repoLog.Printf("loaded schema version %s", key)
	return doc, nil
}

// Compile returns the compiled schema for a version, caching the result.
// Compilation is not free, so compiled schemas share the repository's
// lifetime alongside the raw documents.
func (r *Repository) Compile(version string) (*jsonschema.Schema, error) {
	key := canonicalVersion(version)
	if key == "" {
		return nil, &SchemaNotFoundError{Version: version}
	}

	r.mu.RLock()
	schema, ok := r.compiled[key]
	r.mu.RUnlock()
	if ok {
		return schema, nil
	}

	doc, err := r.GetSchema(version)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://ossa.dev/schemas/v%s.json", key)
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("registering schema %s: %w", key, err)
	}
	schema, err = compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", key, err)
	}

	r.mu.Lock()
	r.compiled[key] = schema
	schema = r.compiled[key]
	r.mu.Unlock()

	return schema, nil
}

// Versions lists the schema versions shipped with this build, sorted
// ascending by semantic version.
func (r *Repository) Versions() []string {
	entries, err := fs.Glob(schemaFS, "schemas/v*.json")
	if err != nil {
		return nil
	}
	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(entry, "schemas/v"), ".json")
		versions = append(versions, name)
	}
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare("v"+versions[i], "v"+versions[j]) < 0
	})
	return versions
}

// Has reports whether a schema document exists for the version.
func (r *Repository) Has(version string) bool {
	key := canonicalVersion(version)
	if key == "" {
		return false
	}
	_, err := fs.Stat(schemaFS, "schemas/v"+key+".json")
	return err == nil
}

// Clear drops both the raw-document and compiled caches. The next GetSchema
// for any version performs a fresh parse and returns a new object.
func (r *Repository) Clear() {
	r.mu.Lock()
	r.docs = make(map[string]map[string]any)
	r.compiled = make(map[string]*jsonschema.Schema)
	r.mu.Unlock()
	repoLog.Print("schema caches cleared")
}

// canonicalVersion normalizes a version string to MAJOR.MINOR.PATCH, so
// "1.0", "v1.0.0" and "1.0.0" address the same cache slot. Returns "" when
// the input is not a semantic version.
func canonicalVersion(version string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	canonical := semver.Canonical(v)
	if canonical == "" {
		return ""
	}
	return strings.TrimPrefix(canonical, "v")
}

package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"erdb/internal/document"
	"erdb/internal/gameversion"
	"erdb/internal/schema"
)

// Result reports one generation run. A non-empty Issues list means the
// written database does not validate; the file is on disk regardless.
type Result struct {
	Category   Category
	OutputFile string
	Loaded     bool
	Elements   int
	Issues     []schema.Issue
}

func (r *Result) Failed() bool {
	return len(r.Issues) > 0
}

// Run generates one category database under <outputRoot>/<version>/,
// merging constructed rows into whatever the file already holds. The
// document is validated after merging and written even when validation
// fails, so a broken run can be inspected; only a write failure aborts.
func Run(g Generator, schemas *schema.Store, outputRoot string, version gameversion.GameVersion) (*Result, error) {
	category := g.Category()
	element := category.ElementName()
	schemaFile := category.SchemaFile()
	outputPath := filepath.Join(outputRoot, version.String(), category.OutputFile())

	if !schemas.Has(schemaFile) {
		return nil, fmt.Errorf("generating %s: schema %s is not in the store", category, schemaFile)
	}

	doc, loaded, err := document.Load(outputPath, element)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", category, err)
	}
	doc.SchemaRef = "../schema/" + schemaFile

	var declared map[string]struct{}
	if g.RequiresPatching() {
		declared, err = schemas.ItemProperties(schemaFile, element)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", category, err)
		}
	}

	for _, row := range g.Rows() {
		key := g.KeyName(row)
		merged := document.Merge(doc.Items[key], g.Construct(row))
		if g.RequiresPatching() {
			document.PatchKeys(merged, declared, g.Renames())
		}
		doc.Items[key] = merged
	}

	issues := schemas.ValidateDocument(schemaFile, element, doc.Full())

	if err := doc.Write(outputPath); err != nil {
		return nil, fmt.Errorf("generating %s: %w", category, err)
	}

	return &Result{
		Category:   category,
		OutputFile: outputPath,
		Loaded:     loaded,
		Elements:   len(doc.Items),
		Issues:     issues,
	}, nil
}

// WriteLatestVersion records the newest known version at the output
// root, for consumers that follow the most recent database set.
func WriteLatestVersion(outputRoot string, version gameversion.GameVersion) error {
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return fmt.Errorf("writing latest version: %w", err)
	}
	path := filepath.Join(outputRoot, "latest_version.txt")
	if err := os.WriteFile(path, []byte(version.String()), 0o644); err != nil {
		return fmt.Errorf("writing latest version: %w", err)
	}
	return nil
}

// ReadLatestVersion reads back the version recorded by WriteLatestVersion.
func ReadLatestVersion(outputRoot string) (string, error) {
	data, err := os.ReadFile(filepath.Join(outputRoot, "latest_version.txt"))
	if err != nil {
		return "", fmt.Errorf("reading latest version: %w", err)
	}
	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", fmt.Errorf("reading latest version: file is empty")
	}
	return version, nil
}

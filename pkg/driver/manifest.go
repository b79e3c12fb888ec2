package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the package manifest looked up next to Auburn
// sources.
const ManifestFileName = "package.yml"

// Manifest represents the parsed contents of package.yml.
type Manifest struct {
	Path    string
	Name    string
	Version string
	License string
	Authors []string
	Targets map[string]*TargetSpec

	// TargetOrder preserves declaration order for default selection.
	TargetOrder []string
}

// TargetSpec describes a runnable or importable target from the
// manifest. Main is the serialized module file, relative to the
// manifest's directory.
type TargetSpec struct {
	Name string
	Type TargetType
	Main string
}

// TargetType enumerates supported target kinds.
type TargetType string

const (
	TargetTypeExecutable TargetType = "executable"
	TargetTypeLibrary    TargetType = "library"
)

// IsValid reports whether the target type is recognised.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeExecutable, TargetTypeLibrary:
		return true
	default:
		return false
	}
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses package.yml from disk, returning a validated
// manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()
	return ParseManifest(file, absPath)
}

// ParseManifest decodes a manifest from r; path is recorded for error
// reporting and entry resolution.
func ParseManifest(r io.Reader, path string) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", path)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}

	manifest := raw.toManifest(path)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	for i, author := range m.Authors {
		if author == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("authors[%d] must be a non-empty string", i))
		}
	}
	for _, name := range m.TargetOrder {
		target := m.Targets[name]
		if target == nil {
			continue
		}
		if target.Type == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("target %q missing type", name))
		} else if !target.Type.IsValid() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("target %q has unsupported type %q", name, target.Type))
		}
		if target.Type == TargetTypeExecutable && target.Main == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("target %q requires a main entrypoint", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

var ErrNoExecutableTarget = errors.New("manifest: no executable targets defined")

// DefaultExecutableTarget returns the first executable target in
// manifest declaration order.
func (m *Manifest) DefaultExecutableTarget() (*TargetSpec, error) {
	if m == nil {
		return nil, ErrNoExecutableTarget
	}
	for _, name := range m.TargetOrder {
		target := m.Targets[name]
		if target != nil && target.Type == TargetTypeExecutable {
			return target, nil
		}
	}
	return nil, ErrNoExecutableTarget
}

// FindTarget looks up a target by name, case-insensitively.
func (m *Manifest) FindTarget(name string) (*TargetSpec, bool) {
	if m == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if target, ok := m.Targets[name]; ok && target != nil {
		return target, true
	}
	for _, candidate := range m.TargetOrder {
		if strings.EqualFold(candidate, name) {
			if target := m.Targets[candidate]; target != nil {
				return target, true
			}
		}
	}
	return nil, false
}

// Dir returns the directory the manifest was loaded from; target main
// paths resolve relative to it.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

type manifestFile struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	License string     `yaml:"license"`
	Authors stringList `yaml:"authors"`
	Targets targetMap  `yaml:"targets"`
}

type targetYAML struct {
	Type TargetType `yaml:"type"`
	Main string     `yaml:"main"`
}

type targetMap struct {
	items []targetMapEntry
}

type targetMapEntry struct {
	name string
	spec *targetYAML
}

// UnmarshalYAML decodes targets as an ordered mapping; plain map
// decoding would lose the declaration order the default-target rule
// depends on.
func (tm *targetMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		tm.items = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: targets must be a mapping")
	}
	items := make([]targetMapEntry, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: targets must not use empty keys")
		}
		entry := new(targetYAML)
		if err := valueNode.Decode(entry); err != nil {
			return fmt.Errorf("manifest: target %q: %w", key, err)
		}
		items = append(items, targetMapEntry{name: key, spec: entry})
	}
	tm.items = items
	return nil
}

type stringList []string

// UnmarshalYAML accepts either a single scalar or a sequence, so
// `authors: someone` and `authors: [a, b]` both parse.
func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}

func (mf manifestFile) toManifest(path string) *Manifest {
	capacity := len(mf.Targets.items)
	result := &Manifest{
		Path:        path,
		Name:        strings.TrimSpace(mf.Name),
		Version:     strings.TrimSpace(mf.Version),
		License:     strings.TrimSpace(mf.License),
		Authors:     mf.Authors,
		Targets:     make(map[string]*TargetSpec, capacity),
		TargetOrder: make([]string, 0, capacity),
	}
	for _, item := range mf.Targets.items {
		if item.spec == nil {
			continue
		}
		if _, exists := result.Targets[item.name]; exists {
			continue
		}
		result.Targets[item.name] = &TargetSpec{
			Name: item.name,
			Type: item.spec.Type,
			Main: strings.TrimSpace(item.spec.Main),
		}
		result.TargetOrder = append(result.TargetOrder, item.name)
	}
	return result
}

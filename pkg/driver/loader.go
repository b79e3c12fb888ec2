package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"auburn/interpreter-go/pkg/ast"
)

// ModuleFileExtension is the on-disk form of a serialized Auburn
// module.
const ModuleFileExtension = ".json"

// Program is a loaded Auburn program: the decoded entry module plus the
// manifest it was resolved through, when one was involved.
type Program struct {
	EntryPath string
	Module    *ast.Module
	Manifest  *Manifest
}

// LoadProgram resolves path into a runnable program. Path may be a
// serialized module file, a package directory containing package.yml,
// or the manifest file itself.
func LoadProgram(path string) (*Program, error) {
	if path == "" {
		return nil, fmt.Errorf("load: empty path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if info.IsDir() {
		return loadFromManifest(filepath.Join(path, ManifestFileName), "")
	}
	if filepath.Base(path) == ManifestFileName {
		return loadFromManifest(path, "")
	}
	return loadModuleFile(path, nil)
}

// LoadProgramTarget is LoadProgram restricted to a named manifest
// target; path must be a package directory or manifest file.
func LoadProgramTarget(path, target string) (*Program, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if info.IsDir() {
		return loadFromManifest(filepath.Join(path, ManifestFileName), target)
	}
	return loadFromManifest(path, target)
}

func loadFromManifest(manifestPath, targetName string) (*Program, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	var target *TargetSpec
	if targetName == "" {
		target, err = manifest.DefaultExecutableTarget()
		if err != nil {
			return nil, err
		}
	} else {
		found, ok := manifest.FindTarget(targetName)
		if !ok {
			return nil, fmt.Errorf("load: manifest %s has no target %q", manifest.Path, targetName)
		}
		if found.Type != TargetTypeExecutable {
			return nil, fmt.Errorf("load: target %q is not executable", targetName)
		}
		target = found
	}
	entry := target.Main
	if !filepath.IsAbs(entry) {
		entry = filepath.Join(manifest.Dir(), entry)
	}
	return loadModuleFile(entry, manifest)
}

func loadModuleFile(path string, manifest *Manifest) (*Program, error) {
	if !strings.EqualFold(filepath.Ext(path), ModuleFileExtension) {
		return nil, fmt.Errorf("load: %s is not a %s module file", path, ModuleFileExtension)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	module, err := ast.DecodeModule(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Program{EntryPath: path, Module: module, Manifest: manifest}, nil
}

package driver

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
name: vectors
version: 0.1.0
license: MIT
authors:
  - First Author
  - Second Author
targets:
  app:
    type: executable
    main: src/main.json
  lib:
    type: library
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if manifest.Name != "vectors" || manifest.Version != "0.1.0" || manifest.License != "MIT" {
		t.Fatalf("unexpected header fields: %#v", manifest)
	}
	if !reflect.DeepEqual(manifest.Authors, []string{"First Author", "Second Author"}) {
		t.Fatalf("unexpected authors %v", manifest.Authors)
	}
	if !reflect.DeepEqual(manifest.TargetOrder, []string{"app", "lib"}) {
		t.Fatalf("unexpected target order %v", manifest.TargetOrder)
	}
	app := manifest.Targets["app"]
	if app == nil || app.Type != TargetTypeExecutable || app.Main != "src/main.json" {
		t.Fatalf("unexpected app target %#v", app)
	}
}

func TestParseManifestScalarAuthor(t *testing.T) {
	manifest, err := ParseManifest(strings.NewReader("name: solo\nauthors: Just One\n"), "package.yml")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(manifest.Authors, []string{"Just One"}) {
		t.Fatalf("unexpected authors %v", manifest.Authors)
	}
}

func TestParseManifestValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"missing name", "version: 1.0.0\n", "name must be provided"},
		{
			"executable without main",
			"name: p\ntargets:\n  app:\n    type: executable\n",
			`target "app" requires a main entrypoint`,
		},
		{
			"unknown target type",
			"name: p\ntargets:\n  app:\n    type: plugin\n    main: m.json\n",
			"unsupported type",
		},
		{
			"target missing type",
			"name: p\ntargets:\n  app:\n    main: m.json\n",
			`target "app" missing type`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest(strings.NewReader(tc.src), "package.yml")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(verr.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", verr, tc.want)
			}
		})
	}
}

func TestParseManifestRejectsUnknownKeys(t *testing.T) {
	_, err := ParseManifest(strings.NewReader("name: p\nflavour: mint\n"), "package.yml")
	if err == nil {
		t.Fatalf("expected unknown key to fail")
	}
}

func TestParseManifestEmpty(t *testing.T) {
	_, err := ParseManifest(strings.NewReader(""), "package.yml")
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty manifest error, got %v", err)
	}
}

func TestDefaultExecutableTarget(t *testing.T) {
	manifest, err := ParseManifest(strings.NewReader(`
name: p
targets:
  helpers:
    type: library
  app:
    type: executable
    main: main.json
  extra:
    type: executable
    main: extra.json
`), "package.yml")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	target, err := manifest.DefaultExecutableTarget()
	if err != nil {
		t.Fatalf("default target: %v", err)
	}
	if target.Name != "app" {
		t.Fatalf("expected first executable target, got %q", target.Name)
	}
}

func TestDefaultExecutableTargetMissing(t *testing.T) {
	manifest, err := ParseManifest(strings.NewReader("name: p\ntargets:\n  lib:\n    type: library\n"), "package.yml")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := manifest.DefaultExecutableTarget(); err != ErrNoExecutableTarget {
		t.Fatalf("expected ErrNoExecutableTarget, got %v", err)
	}
}

func TestFindTarget(t *testing.T) {
	manifest, err := ParseManifest(strings.NewReader("name: p\ntargets:\n  App:\n    type: executable\n    main: main.json\n"), "package.yml")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := manifest.FindTarget("App"); !ok {
		t.Fatalf("exact name lookup failed")
	}
	if target, ok := manifest.FindTarget("app"); !ok || target.Name != "App" {
		t.Fatalf("case-insensitive lookup failed: %#v ok=%v", target, ok)
	}
	if _, ok := manifest.FindTarget("missing"); ok {
		t.Fatalf("lookup of unknown target succeeded")
	}
}

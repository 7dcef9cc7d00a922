package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "kslang.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// поиск идёт вверх от вложенной директории
	path, ok, err := findManifest(nested)
	if err != nil {
		t.Fatalf("findManifest: %v", err)
	}
	if !ok || path != manifest {
		t.Errorf("found %q, %v; want %q", path, ok, manifest)
	}
}

func TestFindManifest_Absent(t *testing.T) {
	_, ok, err := findManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("must not find a manifest in an empty tree")
	}
}

func TestLoadManifest(t *testing.T) {
	root := t.TempDir()
	body := `
[package]
name = "demo"

[lex]
format = "json"
ext = ".kal"
`
	if err := os.WriteFile(filepath.Join(root, "kslang.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok, err := loadManifest(root)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("package name = %q", m.Config.Package.Name)
	}
	if m.Config.Lex.Format != "json" {
		t.Errorf("lex format = %q", m.Config.Lex.Format)
	}
	if m.Config.Lex.Ext != ".kal" {
		t.Errorf("lex ext = %q", m.Config.Lex.Ext)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadManifest_BadTOML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "kslang.toml"), []byte("[package\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadManifest(root); err == nil {
		t.Error("malformed TOML must fail")
	}
}

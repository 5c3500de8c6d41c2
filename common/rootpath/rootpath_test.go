package rootpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFrom(t *testing.T) {
	file := filepath.Join(string(filepath.Separator), "a", "b", "c", "d", "e.go")
	if got := ResolveFrom(file, 4); got != filepath.Join(string(filepath.Separator), "a") {
		t.Fatalf("ResolveFrom 4 levels = %s", got)
	}
	if got := ResolveFrom(file, 1); got != filepath.Join(string(filepath.Separator), "a", "b", "c", "d") {
		t.Fatalf("ResolveFrom 1 level = %s", got)
	}
}

func TestResolve(t *testing.T) {
	dir := Resolve(1)
	if filepath.Base(dir) != "rootpath" {
		t.Fatalf("Resolve(1) = %s", dir)
	}
	if filepath.Base(Resolve(2)) != "common" {
		t.Fatalf("Resolve(2) = %s", Resolve(2))
	}
}

func TestRegisterAndLocate(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "sub", "fixture.yml")
	if err := os.WriteFile(target, []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	Register(dir)
	Register(dir)
	count := 0
	for _, v := range Dirs() {
		if v == dir {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("directory registered %d times", count)
	}

	path, err := Locate(filepath.Join("sub", "fixture.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if path != target {
		t.Fatalf("Locate = %s, want %s", path, target)
	}

	if _, err := Locate("no/such/file"); err != ErrNotFound {
		t.Fatalf("missing file error = %v", err)
	}
}

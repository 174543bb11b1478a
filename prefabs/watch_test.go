package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "character.yaml"), []byte("move_speed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "character.yaml" {
			t.Fatalf("expected character.yaml, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}
}

func TestWatchedExtensions(t *testing.T) {
	tests := []struct {
		path         string
		spec, script bool
	}{
		{"prefabs/camera.yaml", true, false},
		{"prefabs/camera.YML", true, false},
		{"prefabs/scripts/demo.tengo", false, true},
		{"prefabs/readme.md", false, false},
	}
	for _, tc := range tests {
		if isSpecFile(tc.path) != tc.spec || isScriptFile(tc.path) != tc.script {
			t.Fatalf("%s: wrong classification", tc.path)
		}
	}
}

func TestModTimePollerReportsWrites(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "prefabs", "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	spec := filepath.Join(root, "prefabs", CharacterFile)
	if err := os.WriteFile(spec, []byte("move_speed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(root)

	p := NewModTimePoller(CharacterFile, CameraFile, "scripts/demo_run.tengo")
	if got := p.Pending(); len(got) != 0 {
		t.Fatalf("expected no changes before any write, got %v", got)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(spec, later, later); err != nil {
		t.Fatal(err)
	}
	got := p.Pending()
	if len(got) != 1 || got[0] != CharacterFile {
		t.Fatalf("expected [%s], got %v", CharacterFile, got)
	}
	if got := p.Pending(); len(got) != 0 {
		t.Fatalf("change reported twice: %v", got)
	}

	script := filepath.Join(root, "prefabs", "scripts", "demo_run.tengo")
	if err := os.WriteFile(script, []byte("left := false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got = p.Pending()
	if len(got) != 1 || got[0] != "demo_run.tengo" {
		t.Fatalf("expected new script to be reported, got %v", got)
	}
}

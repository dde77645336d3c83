package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocal_SaveAndRead(t *testing.T) {
	t.Parallel()

	st, err := NewLocal(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	name, err := st.Save("pic.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(name, "-pic.png") {
		t.Fatalf("unexpected stored name %q", name)
	}

	got, err := os.ReadFile(filepath.Join(st.Dir(), name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("content = %q", got)
	}
}

func TestLocal_DistinctNamesForSameFilename(t *testing.T) {
	t.Parallel()

	st, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	a, err := st.Save("x.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := st.Save("x.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save(2): %v", err)
	}
	if a == b {
		t.Fatalf("two uploads of the same filename collided: %q", a)
	}
}

func TestLocal_RejectsPathEscape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	name, err := st.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		return // rejecting outright is fine too
	}
	if strings.Contains(name, "..") {
		t.Fatalf("stored name %q escapes the upload dir", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("file not under upload dir: %v", err)
	}
}

package shadowinstall

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/testutil"
)

const selfPath = "/usr/local/bin/shdw"

func stateWith(shadows ...shadow.Shadow) func() (shadow.StoreState, error) {
	return func() (shadow.StoreState, error) {
		return shadow.StoreState{
			Version: shadow.CurrentStoreVersion,
			Shadows: shadow.Shadows(shadows),
		}, nil
	}
}

func TestNewService(t *testing.T) {
	t.Run("should return a service with non-nil ports", func(t *testing.T) {
		svc := NewService(&testutil.MockShadowStore{}, &testutil.MockSymlinker{}, selfPath)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic with nil store", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil store")
			}
		}()
		_ = NewService(nil, &testutil.MockSymlinker{}, selfPath)
	})

	t.Run("should panic with nil symlinker", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil symlinker")
			}
		}()
		_ = NewService(&testutil.MockShadowStore{}, nil, selfPath)
	})
}

func TestService_Add(t *testing.T) {
	t.Run("creates symlink and persists record", func(t *testing.T) {
		binDir := t.TempDir()
		link := filepath.Join(binDir, "ls")

		var createdTarget, createdLink string
		var saved shadow.StoreState
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(),
			SaveFunc: func(state shadow.StoreState) error {
				saved = state
				return nil
			},
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc: func(string) (bool, bool, error) { return false, false, nil },
			CreateFunc: func(target, l string) error {
				createdTarget, createdLink = target, l
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		rec, err := svc.Add("ls", "eza --tree", "tree listing", binDir)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		if createdTarget != selfPath || createdLink != link {
			t.Errorf("Create() called with (%q, %q), want (%q, %q)", createdTarget, createdLink, selfPath, link)
		}
		if rec.Name != "ls" || rec.Command != "eza --tree" || rec.BinPath != binDir || rec.Description != "tree listing" {
			t.Errorf("Add() record = %+v", rec)
		}
		if _, ok := saved.Shadows.Find("ls", binDir); !ok {
			t.Errorf("Add() persisted state without the record: %+v", saved.Shadows)
		}
	})

	t.Run("defaults bin path to the configured setting", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{
			LoadFunc: func() (shadow.StoreState, error) {
				return shadow.StoreState{Settings: shadow.Settings{BinPath: binDir}}, nil
			},
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:  func(string) (bool, bool, error) { return false, false, nil },
			CreateFunc: func(string, string) error { return nil },
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		rec, err := svc.Add("ls", "eza", "", "")
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if rec.BinPath != binDir {
			t.Errorf("Add() bin path = %q, want configured default %q", rec.BinPath, binDir)
		}
	})

	t.Run("rejects a second add for the same pair", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(shadow.Shadow{Name: "ls", Command: "eza", BinPath: binDir}),
		}
		// No symlinker funcs: the add must fail before touching the
		// filesystem, leaving the first installation unchanged.
		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)

		_, err := svc.Add("ls", "lsd", "", binDir)
		if !errors.Is(err, shadow.ErrAlreadyShadowed) {
			t.Errorf("Add() error = %v, want ErrAlreadyShadowed", err)
		}
	})

	t.Run("same name in a different directory is allowed", func(t *testing.T) {
		otherDir := t.TempDir()
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(shadow.Shadow{Name: "ls", Command: "eza", BinPath: otherDir}),
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:  func(string) (bool, bool, error) { return false, false, nil },
			CreateFunc: func(string, string) error { return nil },
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		if _, err := svc.Add("ls", "lsd", "", binDir); err != nil {
			t.Errorf("Add() error = %v, want success", err)
		}
	})

	t.Run("refuses to overwrite a foreign file", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{LoadFunc: stateWith()}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc: func(string) (bool, bool, error) { return true, false, nil },
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		_, err := svc.Add("ls", "eza", "", binDir)
		if !errors.Is(err, shadow.ErrNameCollision) {
			t.Errorf("Add() error = %v, want ErrNameCollision", err)
		}
	})

	t.Run("refuses a symlink owned by something else", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{LoadFunc: stateWith()}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:   func(string) (bool, bool, error) { return true, true, nil },
			ResolveFunc: func(string) (string, error) { return "/usr/bin/other-tool", nil },
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		_, err := svc.Add("ls", "eza", "", binDir)
		if !errors.Is(err, shadow.ErrNameCollision) {
			t.Errorf("Add() error = %v, want ErrNameCollision", err)
		}
	})

	t.Run("reuses an existing shim symlink", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(),
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		created := false
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:   func(string) (bool, bool, error) { return true, true, nil },
			ResolveFunc: func(string) (string, error) { return selfPath, nil },
			CreateFunc: func(string, string) error {
				created = true
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		if _, err := svc.Add("ls", "eza", "", binDir); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if created {
			t.Error("Add() re-created a symlink that already pointed at the shim")
		}
	})

	t.Run("removes the created symlink when persistence fails", func(t *testing.T) {
		binDir := t.TempDir()
		saveErr := errors.New("disk full")
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(),
			SaveFunc: func(shadow.StoreState) error { return saveErr },
		}
		var removed string
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:  func(string) (bool, bool, error) { return false, false, nil },
			CreateFunc: func(string, string) error { return nil },
			RemoveFunc: func(link string) error {
				removed = link
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		_, err := svc.Add("ls", "eza", "", binDir)
		if !errors.Is(err, saveErr) {
			t.Fatalf("Add() error = %v, want the persistence error", err)
		}
		if removed != filepath.Join(binDir, "ls") {
			t.Errorf("compensation removed %q, want %q", removed, filepath.Join(binDir, "ls"))
		}
	})

	t.Run("does not remove a reused symlink when persistence fails", func(t *testing.T) {
		binDir := t.TempDir()
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(),
			SaveFunc: func(shadow.StoreState) error { return errors.New("disk full") },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:   func(string) (bool, bool, error) { return true, true, nil },
			ResolveFunc: func(string) (string, error) { return selfPath, nil },
			RemoveFunc: func(string) error {
				t.Error("compensation removed a symlink this Add did not create")
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		if _, err := svc.Add("ls", "eza", "", binDir); err == nil {
			t.Fatal("Add() succeeded, want persistence error")
		}
	})

	t.Run("rejects an uncreatable bin path", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		mockStore := &testutil.MockShadowStore{LoadFunc: stateWith()}

		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)
		_, err := svc.Add("ls", "eza", "", filepath.Join(blocker, "bin"))
		if !errors.Is(err, shadow.ErrInvalidBinPath) {
			t.Errorf("Add() error = %v, want ErrInvalidBinPath", err)
		}
	})

	t.Run("rejects an empty replacement command", func(t *testing.T) {
		svc := NewService(&testutil.MockShadowStore{}, &testutil.MockSymlinker{}, selfPath)
		if _, err := svc.Add("ls", "   ", "", t.TempDir()); err == nil {
			t.Error("Add() accepted a blank replacement command")
		}
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("deletes symlink and record", func(t *testing.T) {
		binDir := t.TempDir()
		rec := shadow.Shadow{Name: "ls", Command: "eza", BinPath: binDir}

		var removedLink string
		var saved shadow.StoreState
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(rec),
			SaveFunc: func(state shadow.StoreState) error {
				saved = state
				return nil
			},
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc: func(string) (bool, bool, error) { return true, true, nil },
			RemoveFunc: func(link string) error {
				removedLink = link
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		result, err := svc.Remove("ls", binDir)
		if err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if result.LinkMissing {
			t.Error("Remove() reported LinkMissing for an existing symlink")
		}
		if removedLink != filepath.Join(binDir, "ls") {
			t.Errorf("Remove() deleted %q, want %q", removedLink, filepath.Join(binDir, "ls"))
		}
		if len(saved.Shadows) != 0 {
			t.Errorf("Remove() persisted %v, want no records", saved.Shadows)
		}
	})

	t.Run("tolerates an already-missing symlink", func(t *testing.T) {
		binDir := t.TempDir()
		rec := shadow.Shadow{Name: "ls", Command: "eza", BinPath: binDir}
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(rec),
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc: func(string) (bool, bool, error) { return false, false, nil },
			RemoveFunc: func(string) error {
				t.Error("Remove() tried to delete a missing symlink")
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		result, err := svc.Remove("ls", "")
		if err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if !result.LinkMissing {
			t.Error("Remove() did not report the missing symlink")
		}
	})

	t.Run("leaves a foreign file in place", func(t *testing.T) {
		binDir := t.TempDir()
		rec := shadow.Shadow{Name: "ls", Command: "eza", BinPath: binDir}
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(rec),
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc: func(string) (bool, bool, error) { return true, false, nil },
			RemoveFunc: func(string) error {
				t.Error("Remove() deleted a non-symlink file")
				return nil
			},
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		result, err := svc.Remove("ls", "")
		if err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if !result.LinkMissing {
			t.Error("Remove() did not flag the foreign file")
		}
	})

	t.Run("missing shadow leaves everything untouched", func(t *testing.T) {
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(),
			SaveFunc: func(shadow.StoreState) error {
				t.Error("Remove() persisted state for a missing shadow")
				return nil
			},
		}

		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)
		_, err := svc.Remove("missing", "")
		if !errors.Is(err, shadow.ErrShadowNotFound) {
			t.Errorf("Remove() error = %v, want ErrShadowNotFound", err)
		}
	})

	t.Run("ambiguous name without a bin path", func(t *testing.T) {
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(
				shadow.Shadow{Name: "ls", Command: "eza", BinPath: "/opt/bin"},
				shadow.Shadow{Name: "ls", Command: "lsd", BinPath: "/usr/local/bin"},
			),
		}

		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)
		_, err := svc.Remove("ls", "")
		if !errors.Is(err, shadow.ErrAmbiguousShadow) {
			t.Errorf("Remove() error = %v, want ErrAmbiguousShadow", err)
		}
	})

	t.Run("explicit bin path disambiguates", func(t *testing.T) {
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(
				shadow.Shadow{Name: "ls", Command: "eza", BinPath: "/opt/bin"},
				shadow.Shadow{Name: "ls", Command: "lsd", BinPath: "/usr/local/bin"},
			),
			SaveFunc: func(shadow.StoreState) error { return nil },
		}
		mockLinks := &testutil.MockSymlinker{
			ProbeFunc:  func(string) (bool, bool, error) { return true, true, nil },
			RemoveFunc: func(string) error { return nil },
		}

		svc := NewService(mockStore, mockLinks, selfPath)
		result, err := svc.Remove("ls", "/opt/bin")
		if err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if result.Removed.Command != "eza" {
			t.Errorf("Remove() removed %+v, want the /opt/bin record", result.Removed)
		}
	})
}

func TestService_List(t *testing.T) {
	t.Run("returns shadows sorted by name", func(t *testing.T) {
		mockStore := &testutil.MockShadowStore{
			LoadFunc: stateWith(
				shadow.Shadow{Name: "ls", Command: "eza", BinPath: "/opt/bin"},
				shadow.Shadow{Name: "cat", Command: "bat", BinPath: "/opt/bin"},
			),
		}

		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)
		got, err := svc.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].Name != "cat" || got[1].Name != "ls" {
			t.Errorf("List() = %v, want sorted by name", got)
		}
	})

	t.Run("propagates store errors", func(t *testing.T) {
		loadErr := errors.New("load failed")
		mockStore := &testutil.MockShadowStore{
			LoadFunc: func() (shadow.StoreState, error) { return shadow.StoreState{}, loadErr },
		}

		svc := NewService(mockStore, &testutil.MockSymlinker{}, selfPath)
		if _, err := svc.List(); !errors.Is(err, loadErr) {
			t.Errorf("List() error = %v, want %v", err, loadErr)
		}
	})
}

func TestService_AddRemoveRestoresState(t *testing.T) {
	// The list after add(name) then remove(name) equals the pre-add
	// state. A lightweight in-memory store stands in for the file.
	binDir := t.TempDir()
	current := shadow.StoreState{Version: shadow.CurrentStoreVersion}
	mockStore := &testutil.MockShadowStore{
		LoadFunc: func() (shadow.StoreState, error) { return current, nil },
		SaveFunc: func(state shadow.StoreState) error {
			current = state
			return nil
		},
	}
	links := map[string]bool{}
	mockLinks := &testutil.MockSymlinker{
		ProbeFunc: func(link string) (bool, bool, error) { return links[link], links[link], nil },
		CreateFunc: func(_, link string) error {
			links[link] = true
			return nil
		},
		RemoveFunc: func(link string) error {
			delete(links, link)
			return nil
		},
	}

	svc := NewService(mockStore, mockLinks, selfPath)

	if _, err := svc.Add("ls", "eza", "", binDir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(current.Shadows) != 1 || !links[filepath.Join(binDir, "ls")] {
		t.Fatalf("after add: shadows=%v links=%v", current.Shadows, links)
	}

	if _, err := svc.Remove("ls", binDir); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(current.Shadows) != 0 || len(links) != 0 {
		t.Errorf("after remove: shadows=%v links=%v, want pre-add state", current.Shadows, links)
	}
}

package vectors

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	store, err := NewStore(mr.Addr(), "", 0)
	if err != nil {
		mr.Close()
		t.Fatalf("NewStore() error = %v", err)
	}

	return store, mr
}

func TestNewStoreInvalidAddr(t *testing.T) {
	_, err := NewStore("invalid:9999", "", 0)
	if err == nil {
		t.Error("NewStore should return error for an unreachable address")
	}
}

func TestPutAndGet(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	digest := []byte{0x01, 0x02, 0x03, 0x04}
	if err := store.Put("scenario1", digest); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := store.Get("scenario1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("expected vector to be found")
	}
	if string(got) != string(digest) {
		t.Errorf("Get() = %x, want %x", got, digest)
	}
}

func TestGetMissing(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	_, found, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected vector not to be found")
	}
}

func TestCheckFreezesOnFirstRun(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	digest := []byte{0xaa, 0xbb}
	ok, err := store.Check("scenario2", digest)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !ok {
		t.Error("first Check() call should freeze and report ok")
	}

	frozen, found, err := store.Get("scenario2")
	if err != nil || !found {
		t.Fatalf("expected digest to be frozen after first Check()")
	}
	if string(frozen) != string(digest) {
		t.Errorf("frozen digest = %x, want %x", frozen, digest)
	}
}

func TestCheckDetectsRegression(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	original := []byte{0x01, 0x02}
	if _, err := store.Check("scenario3", original); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	changed := []byte{0x01, 0x03}
	ok, err := store.Check("scenario3", changed)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if ok {
		t.Error("Check() should report a mismatch against a changed digest")
	}
}

func TestCheckAgreesOnRepeatedRun(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	digest := []byte{0x11, 0x22, 0x33}
	if _, err := store.Check("scenario4", digest); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	ok, err := store.Check("scenario4", digest)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !ok {
		t.Error("Check() should agree when digest is unchanged")
	}
}

func TestNames(t *testing.T) {
	store, mr := setupTestStore(t)
	defer mr.Close()
	defer store.Close()

	if err := store.Put("alpha", []byte{0x01}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put("beta", []byte{0x02}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}
}

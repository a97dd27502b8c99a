package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.apkg")
	notes := []Note{
		{Word: "집", Particle: "이(가)", Phrase: "집이"},
		{Word: "나오", Particle: "이(가)", Phrase: "나오가"},
		{Word: "모리안", Particle: "은(는)", Phrase: "모리안은"},
	}

	if err := WriteDeck(path, "Korean Particles", notes); err != nil {
		t.Fatalf("write deck: %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer r.Close()

	var haveCollection, haveMedia bool
	tempDir := t.TempDir()
	for _, f := range r.File {
		switch f.Name {
		case "collection.anki2":
			haveCollection = true
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			out, err := os.Create(filepath.Join(tempDir, f.Name))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := io.Copy(out, rc); err != nil {
				t.Fatal(err)
			}
			out.Close()
			rc.Close()
		case "media":
			haveMedia = true
		}
	}
	if !haveCollection {
		t.Fatal("expected collection.anki2 in archive")
	}
	if !haveMedia {
		t.Fatal("expected media manifest in archive")
	}

	db, err := sql.Open("sqlite", filepath.Join(tempDir, "collection.anki2"))
	if err != nil {
		t.Fatalf("opening collection: %v", err)
	}
	defer db.Close()

	var noteCount, cardCount int
	if err := db.QueryRow("SELECT count(*) FROM notes").Scan(&noteCount); err != nil {
		t.Fatalf("counting notes: %v", err)
	}
	if err := db.QueryRow("SELECT count(*) FROM cards").Scan(&cardCount); err != nil {
		t.Fatalf("counting cards: %v", err)
	}
	if noteCount != len(notes) {
		t.Errorf("expected %d notes, got %d", len(notes), noteCount)
	}
	if cardCount != len(notes) {
		t.Errorf("expected %d cards, got %d", len(notes), cardCount)
	}

	var flds string
	if err := db.QueryRow("SELECT flds FROM notes ORDER BY id LIMIT 1").Scan(&flds); err != nil {
		t.Fatalf("reading note: %v", err)
	}
	want := "집" + fieldSep + "이(가)" + fieldSep + "집이"
	if flds != want {
		t.Errorf("expected fields %q, got %q", want, flds)
	}
}

func TestNoteGUIDStable(t *testing.T) {
	a := noteGUID(Note{Word: "집", Particle: "이(가)"})
	b := noteGUID(Note{Word: "집", Particle: "이(가)"})
	if a != b {
		t.Errorf("expected stable guid, got %q and %q", a, b)
	}
	c := noteGUID(Note{Word: "나오", Particle: "이(가)"})
	if a == c {
		t.Error("expected different guids for different words")
	}
}

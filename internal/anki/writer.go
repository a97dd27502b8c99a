// Package anki writes Anki .apkg flashcard decks.
package anki

import (
	"archive/zip"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Note is one particle-attachment flashcard.
type Note struct {
	Word     string // front: bare word
	Particle string // front: particle form as written
	Phrase   string // back: word with the resolved allomorph attached
}

const fieldSep = "\x1f"

// Stable IDs keep re-exports of the same deck importable as updates.
const (
	modelID = 1693900000001
	deckID  = 1693900000002
)

// WriteDeck creates an .apkg file containing one card per note.
func WriteDeck(path, deckName string, notes []Note) error {
	tempDir, err := os.MkdirTemp("", "josa-anki-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := writeCollection(dbPath, deckName, notes); err != nil {
		return err
	}

	// .apkg media manifest; empty since the deck has no media files
	mediaPath := filepath.Join(tempDir, "media")
	if err := os.WriteFile(mediaPath, []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}

	return writeArchive(path, tempDir)
}

// writeCollection builds the collection.anki2 SQLite database.
func writeCollection(dbPath, deckName string, notes []Note) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return err
	}

	now := time.Now().Unix()

	if err := insertCol(db, deckName, now); err != nil {
		return err
	}

	for i, note := range notes {
		noteID := now*1000 + int64(i)
		flds := note.Word + fieldSep + note.Particle + fieldSep + note.Phrase

		_, err := db.Exec(`
			INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
			VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')
		`, noteID, noteGUID(note), modelID, now, flds, note.Word, checksum(note.Word))
		if err != nil {
			return fmt.Errorf("inserting note %d: %w", i, err)
		}

		_, err = db.Exec(`
			INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl,
				factor, reps, lapses, left, odue, odid, flags, data)
			VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')
		`, noteID, noteID, deckID, now, i+1)
		if err != nil {
			return fmt.Errorf("inserting card %d: %w", i, err)
		}
	}

	return nil
}

func createSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE col (
			id integer primary key,
			crt integer not null,
			mod integer not null,
			scm integer not null,
			ver integer not null,
			dty integer not null,
			usn integer not null,
			ls integer not null,
			conf text not null,
			models text not null,
			decks text not null,
			dconf text not null,
			tags text not null
		)`,
		`CREATE TABLE notes (
			id integer primary key,
			guid text not null,
			mid integer not null,
			mod integer not null,
			usn integer not null,
			tags text not null,
			flds text not null,
			sfld text not null,
			csum integer not null,
			flags integer not null,
			data text not null
		)`,
		`CREATE TABLE cards (
			id integer primary key,
			nid integer not null,
			did integer not null,
			ord integer not null,
			mod integer not null,
			usn integer not null,
			type integer not null,
			queue integer not null,
			due integer not null,
			ivl integer not null,
			factor integer not null,
			reps integer not null,
			lapses integer not null,
			left integer not null,
			odue integer not null,
			odid integer not null,
			flags integer not null,
			data text not null
		)`,
		`CREATE TABLE revlog (
			id integer primary key,
			cid integer not null,
			usn integer not null,
			ease integer not null,
			ivl integer not null,
			lastIvl integer not null,
			factor integer not null,
			time integer not null,
			type integer not null
		)`,
		`CREATE TABLE graves (
			usn integer not null,
			oid integer not null,
			type integer not null
		)`,
		`CREATE INDEX ix_notes_csum ON notes (csum)`,
		`CREATE INDEX ix_cards_nid ON cards (nid)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func insertCol(db *sql.DB, deckName string, now int64) error {
	models := map[string]interface{}{
		strconv.FormatInt(modelID, 10): map[string]interface{}{
			"id":    modelID,
			"name":  "Korean Particle",
			"type":  0,
			"mod":   now,
			"usn":   -1,
			"sortf": 0,
			"did":   deckID,
			"flds": []map[string]interface{}{
				{"name": "Word", "ord": 0, "sticky": false, "rtl": false, "font": "Arial", "size": 20},
				{"name": "Particle", "ord": 1, "sticky": false, "rtl": false, "font": "Arial", "size": 20},
				{"name": "Phrase", "ord": 2, "sticky": false, "rtl": false, "font": "Arial", "size": 20},
			},
			"tmpls": []map[string]interface{}{
				{
					"name": "Attach",
					"ord":  0,
					"qfmt": "{{Word}} + {{Particle}}",
					"afmt": "{{FrontSide}}<hr id=answer>{{Phrase}}",
					"did":  nil,
				},
			},
			"css":       ".card { font-family: arial; font-size: 28px; text-align: center; }",
			"latexPre":  "\\documentclass[12pt]{article}\n\\begin{document}\n",
			"latexPost": "\\end{document}",
			"req":       [][]interface{}{{0, "all", []int{0}}},
		},
	}

	decks := map[string]interface{}{
		"1": map[string]interface{}{
			"id": 1, "name": "Default", "desc": "",
			"mod": now, "usn": -1, "collapsed": false, "dyn": 0, "conf": 1,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
		},
		strconv.FormatInt(deckID, 10): map[string]interface{}{
			"id": deckID, "name": deckName, "desc": "",
			"mod": now, "usn": -1, "collapsed": false, "dyn": 0, "conf": 1,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
		},
	}

	dconf := map[string]interface{}{
		"1": map[string]interface{}{
			"id": 1, "name": "Default", "mod": 0, "usn": 0,
			"maxTaken": 60, "autoplay": true, "timer": 0, "replayq": true,
			"new": map[string]interface{}{
				"delays": []int{1, 10}, "ints": []int{1, 4, 7},
				"initialFactor": 2500, "perDay": 20, "order": 1, "bury": false,
			},
			"rev": map[string]interface{}{
				"perDay": 200, "ease4": 1.3, "ivlFct": 1.0, "maxIvl": 36500,
				"bury": false, "hardFactor": 1.2,
			},
			"lapse": map[string]interface{}{
				"delays": []int{10}, "mult": 0.0, "minInt": 1, "leechFails": 8, "leechAction": 0,
			},
		},
	}

	conf := map[string]interface{}{
		"curModel":       strconv.FormatInt(modelID, 10),
		"curDeck":        deckID,
		"activeDecks":    []int64{deckID},
		"nextPos":        1,
		"sortType":       "noteFld",
		"sortBackwards":  false,
		"collapseTime":   1200,
		"timeLim":        0,
		"estTimes":       true,
		"dueCounts":      true,
		"addToCur":       true,
		"newSpread":      0,
		"schedVer":       1,
		"dayLearnFirst":  false,
	}

	modelsJSON, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	decksJSON, err := json.Marshal(decks)
	if err != nil {
		return fmt.Errorf("marshaling decks: %w", err)
	}
	dconfJSON, err := json.Marshal(dconf)
	if err != nil {
		return fmt.Errorf("marshaling deck config: %w", err)
	}
	confJSON, err := json.Marshal(conf)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')
	`, now, now*1000, now*1000, string(confJSON), string(modelsJSON), string(decksJSON), string(dconfJSON))
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}
	return nil
}

// noteGUID derives a stable identifier so re-imports update in place.
func noteGUID(n Note) string {
	h := sha256.Sum256([]byte(n.Word + fieldSep + n.Particle))
	return fmt.Sprintf("%x", h[:8])
}

// checksum is the first 8 hex digits of the sort field hash.
func checksum(sortField string) int64 {
	h := sha256.Sum256([]byte(sortField))
	hashStr := fmt.Sprintf("%x", h)
	csum, _ := strconv.ParseInt(hashStr[:8], 16, 64)
	return csum
}

// writeArchive zips the staging directory into an .apkg file.
func writeArchive(path, dir string) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)
	defer zipWriter.Close()

	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		file, err := os.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
}

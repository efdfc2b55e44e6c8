// Package sav provides a high-level, space-efficient codec for
// Colonization's legacy ".SAV" and ".MP" save files.
//
// It reads and writes the binary format byte-for-byte (schema),
// exposes a canonical-data-representation view for JSON/YAML tooling
// (cdr), and bridges both directions between the legacy record tree
// and a normalized modern state tree (bridge).
//
// # Basic Usage
//
// Loading and re-saving a save file:
//
//	game, err := sav.Load("COLONIZE.SAV")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	game.Header.Turn++
//	if err := sav.Save("COLONIZE.SAV", game); err != nil {
//	    log.Fatal(err)
//	}
//
// Converting to the modern state tree and back:
//
//	state, idMap, err := sav.ToModern(game)
//	legacy, err := sav.FromModern(state, idMap)
//
// Exporting a save to JSON for inspection or diffing:
//
//	data, err := sav.ToJSON(game)
//
// For lower-level access (binary cursors, individual record codecs,
// the CDR value tree, terrain algorithms) use the schema, cdr, bridge,
// and terrain packages directly.
package sav

import (
	"fmt"
	"os"

	"github.com/colonize-reborn/sav/archive"
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/bridge"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/savlog"
	"github.com/colonize-reborn/sav/schema"
)

// Load reads a legacy save file from path and decodes it into a
// SaveGame.
func Load(path string) (*schema.SaveGame, error) {
	timer := savlog.NewTimer("sav.Load")
	defer timer.Stop()

	cur, err := binio.OpenFileCursor(path)
	if err != nil {
		return nil, fmt.Errorf("sav: open %s: %w", path, err)
	}
	defer cur.Close()

	sg := schema.NewSaveGame()
	if err := sg.ReadBinary(cur); err != nil {
		return nil, fmt.Errorf("sav: decode %s: %w", path, err)
	}
	return sg, nil
}

// Save encodes sg and writes it to path, creating or truncating the
// file as needed.
func Save(path string, sg *schema.SaveGame) error {
	timer := savlog.NewTimer("sav.Save")
	defer timer.Stop()

	cur, err := binio.CreateFileCursor(path)
	if err != nil {
		return fmt.Errorf("sav: create %s: %w", path, err)
	}
	defer cur.Close()

	if err := sg.WriteBinary(cur); err != nil {
		return fmt.Errorf("sav: encode %s: %w", path, err)
	}
	return nil
}

// LoadMapFile reads a standalone ".MP" map file from path.
func LoadMapFile(path string) (*schema.MapFile, error) {
	cur, err := binio.OpenFileCursor(path)
	if err != nil {
		return nil, fmt.Errorf("sav: open %s: %w", path, err)
	}
	defer cur.Close()

	mf := &schema.MapFile{}
	if err := mf.ReadBinary(cur); err != nil {
		return nil, fmt.Errorf("sav: decode %s: %w", path, err)
	}
	return mf, nil
}

// SaveMapFile encodes mf and writes it to path.
func SaveMapFile(path string, mf *schema.MapFile) error {
	cur, err := binio.CreateFileCursor(path)
	if err != nil {
		return fmt.Errorf("sav: create %s: %w", path, err)
	}
	defer cur.Close()

	if err := mf.WriteBinary(cur); err != nil {
		return fmt.Errorf("sav: encode %s: %w", path, err)
	}
	return nil
}

// ToModern converts a legacy save into the normalized modern state
// tree, along with the entity IdMap the conversion produced (needed
// to round-trip entity IDs back with FromModern).
func ToModern(sg *schema.SaveGame) (*modern.State, *bridge.IdMap, error) {
	return bridge.ConvertToNG(sg)
}

// FromModern converts a modern state tree back into a legacy save.
// idMap should be the IdMap ToModern produced for this save (or a
// freshly constructed one for a save with no prior entity IDs to
// preserve).
func FromModern(state *modern.State, idMap *bridge.IdMap) (*schema.SaveGame, error) {
	return bridge.ConvertToOG(state, idMap)
}

// ToCDR renders sg as a canonical-data-representation value tree,
// suitable for JSON/YAML marshaling or structural diffing.
func ToCDR(sg *schema.SaveGame) cdr.Value { return sg.ToCanonical() }

// ToJSON renders sg as JSON via its CDR tree.
func ToJSON(sg *schema.SaveGame) ([]byte, error) {
	return cdr.MarshalJSON(sg.ToCanonical())
}

// ToYAML renders sg as YAML via its CDR tree.
func ToYAML(sg *schema.SaveGame) ([]byte, error) {
	return cdr.MarshalYAML(sg.ToCanonical())
}

// Archive encodes sg to its binary form and compresses it with method
// into an archive.Pack container, suitable for storing many saves
// (autosave history, network transfer) far more compactly than the
// legacy format's own uncompressed layout.
func Archive(sg *schema.SaveGame, method archive.Method) ([]byte, error) {
	f, err := os.CreateTemp("", "sav-archive-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("sav: create scratch file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := Save(path, sg); err != nil {
		return nil, fmt.Errorf("sav: encode for archive: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sav: read scratch file: %w", err)
	}
	return archive.Pack(method, data)
}

// Unarchive reverses Archive: it decompresses blob and decodes the
// resulting bytes into a SaveGame.
func Unarchive(blob []byte) (*schema.SaveGame, error) {
	data, err := archive.Unpack(blob)
	if err != nil {
		return nil, fmt.Errorf("sav: unpack archive: %w", err)
	}
	cur := binio.NewMemCursor(data)
	sg := schema.NewSaveGame()
	if err := sg.ReadBinary(cur); err != nil {
		return nil, fmt.Errorf("sav: decode archived save: %w", err)
	}
	return sg, nil
}

// Package deck loads faction decks from a delimited card list.
//
// Each record is: faction, name, power, kind, row. Records for other factions
// are skipped. A malformed record is kept with defaulted fields rather than
// failing the load; only an unreadable source is an error.
package deck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/jason-s-yu/gwynt/engine"
)

// Column positions within a record.
const (
	colFaction = iota
	colName
	colPower
	colKind
	colRow
)

// Load reads r and returns the cards of the given faction with ids assigned
// sequentially from startID.
func Load(r io.Reader, faction string, startID engine.CardID) ([]engine.Card, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	want := normalizeFaction(faction)
	var cards []engine.Card
	next := startID
	for _, rec := range records {
		if normalizeFaction(field(rec, colFaction)) != want {
			continue
		}
		cards = append(cards, parseCard(rec, next))
		next++
	}
	return cards, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path, faction string, startID engine.CardID) ([]engine.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck source: %w", err)
	}
	defer f.Close()

	cards, err := Load(f, faction, startID)
	if err != nil {
		return nil, fmt.Errorf("load deck %q from %s: %w", faction, path, err)
	}
	return cards, nil
}

// Factions returns the distinct factions present in r, in first-seen order.
func Factions(r io.Reader) ([]string, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		name := strings.TrimSpace(field(rec, colFaction))
		key := normalizeFaction(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out, nil
}

// readRecords parses every record, dropping a leading header row.
func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// A broken line is skipped; the rest of the source is still usable.
				continue
			}
			return nil, fmt.Errorf("read deck source: %w", err)
		}
		records = append(records, rec)
	}

	if len(records) > 0 && strings.EqualFold(strings.TrimSpace(field(records[0], colFaction)), "faction") {
		records = records[1:]
	}
	return records, nil
}

// parseCard builds a card from a record, defaulting anything unparsable.
func parseCard(rec []string, id engine.CardID) engine.Card {
	return engine.Card{
		ID:    id,
		Name:  strings.TrimSpace(field(rec, colName)),
		Power: parsePower(field(rec, colPower)),
		Kind:  engine.ParseCardKind(field(rec, colKind)),
		Row:   engine.ParseRow(field(rec, colRow)),
	}
}

// parsePower parses a small non-negative integer, returning 0 on failure.
func parsePower(s string) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func normalizeFaction(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Shuffle returns a shuffled copy of cards.
func Shuffle(cards []engine.Card, rng *rand.Rand) []engine.Card {
	out := make([]engine.Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Example returns n identical unit cards named prefix<id> with ids
// from startID. Used for demo matches without a card file.
func Example(prefix string, power uint8, startID engine.CardID, n int) []engine.Card {
	out := make([]engine.Card, n)
	for i := range out {
		id := startID + engine.CardID(i)
		out[i] = engine.Card{
			ID:    id,
			Name:  fmt.Sprintf("%s%d", prefix, id),
			Power: power,
		}
	}
	return out
}

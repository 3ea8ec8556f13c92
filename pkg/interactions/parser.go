// Package interactions normalizes raw protein-interaction records into
// canonical (source, target, weight) triples.
//
// Upstream payloads are heterogeneous: individual records may be missing
// fields or carry scores as strings instead of numbers. The parser is the
// validation boundary where that looseness ends; everything downstream works
// on well-formed triples only.
package interactions

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is one raw interaction entry as returned by the STRING network
// endpoint. Score is kept raw because the API has been observed to emit it
// both as a JSON number and as a quoted numeric string.
type Record struct {
	Source string          `json:"preferredName_A"`
	Target string          `json:"preferredName_B"`
	Score  json.RawMessage `json:"score"`
}

// Triple is a normalized interaction: both endpoints named and the
// confidence score converted to a float. Weight is expected in [0,1] but is
// not clamped.
type Triple struct {
	Source string
	Target string
	Weight float64
}

// Parse normalizes a batch of raw records. Records missing a source name, a
// target name, or a float-convertible score are dropped silently; malformed
// entries are an expected property of the upstream data, not an error. A nil
// or empty batch yields zero triples.
func Parse(records []Record) []Triple {
	if len(records) == 0 {
		return nil
	}

	triples := make([]Triple, 0, len(records))
	for _, r := range records {
		weight, ok := scoreValue(r.Score)
		if r.Source == "" || r.Target == "" || !ok {
			continue
		}
		triples = append(triples, Triple{
			Source: r.Source,
			Target: r.Target,
			Weight: weight,
		})
	}
	return triples
}

// DecodeRecords decodes a JSON payload into raw records. Payloads that are
// empty or not a JSON array decode to zero records rather than failing, so a
// "no interactions" response and a malformed response both surface downstream
// as the empty outcome.
func DecodeRecords(data []byte) []Record {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// scoreValue converts a raw score to a float64. Accepts JSON numbers and
// quoted numeric strings; anything else is unconvertible.
func scoreValue(raw json.RawMessage) (float64, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	weight, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return weight, true
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document represents the solar-terms.json structure
type Document struct {
	Schema   string                `json:"$schema"`
	Version  string                `json:"version"`
	Metadata Metadata              `json:"metadata"`
	Data     map[string]YearRecord `json:"data"`
}

// Metadata carries the descriptive block written ahead of the data
type Metadata struct {
	Description    string          `json:"description"`
	DataSource     string          `json:"dataSource"`
	PrecisionLevel string          `json:"precisionLevel"`
	Timezone       string          `json:"timezone"`
	DateFormat     string          `json:"dateFormat"`
	LastUpdated    string          `json:"lastUpdated"`
	Coverage       Coverage        `json:"coverage"`
	Notes          []string        `json:"notes"`
	SolarTerms     SolarTermGroups `json:"solarTerms"`
	Usage          Usage           `json:"usage"`
	Improvements   Improvements    `json:"improvements"`
}

// Coverage is the inclusive year range held in Data
type Coverage struct {
	StartYear  int `json:"startYear"`
	EndYear    int `json:"endYear"`
	TotalYears int `json:"totalYears"`
}

type SolarTermGroups struct {
	Major []TermDefinition `json:"major"`
	Minor []TermDefinition `json:"minor"`
}

type Usage struct {
	LiChun     string `json:"liChun"`
	MajorTerms string `json:"majorTerms"`
	MinorTerms string `json:"minorTerms"`
}

type Improvements struct {
	Phase2 []string `json:"phase2"`
	Phase3 []string `json:"phase3"`
}

// YearKey formats a year as a Data key
// Format: YYYY, zero padded
func YearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

// TermDate is a single term key and its ISO 8601 timestamp
type TermDate struct {
	Key       string
	Timestamp string
}

// YearRecord maps term keys to timestamps for one year, keeping insertion
// order on both marshal and unmarshal
type YearRecord []TermDate

// Get returns the timestamp stored for key
func (r YearRecord) Get(key string) (string, bool) {
	for _, td := range r {
		if td.Key == key {
			return td.Timestamp, true
		}
	}
	return "", false
}

// Keys returns the term keys in insertion order
func (r YearRecord) Keys() []string {
	keys := make([]string, len(r))
	for i, td := range r {
		keys[i] = td.Key
	}
	return keys
}

func (r YearRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, td := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(td.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(td.Timestamp)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *YearRecord) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*r = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("year record must be a JSON object")
	}

	var record YearRecord
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in year record", tok)
		}
		var ts string
		if err := dec.Decode(&ts); err != nil {
			return fmt.Errorf("invalid timestamp for %s: %w", key, err)
		}
		record = append(record, TermDate{Key: key, Timestamp: ts})
	}

	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = record
	return nil
}

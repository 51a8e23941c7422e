package solarterms

import (
	"testing"

	"github.com/pders01/solarterms/internal/models"
)

func TestTermCounts(t *testing.T) {
	if n := len(Terms()); n != TermCount {
		t.Errorf("expected %d terms, got %d", TermCount, n)
	}
	if n := len(MajorTerms()); n != 12 {
		t.Errorf("expected 12 major terms, got %d", n)
	}
	if n := len(MinorTerms()); n != 12 {
		t.Errorf("expected 12 minor terms, got %d", n)
	}
}

func TestMajorMinorPartition(t *testing.T) {
	seen := make(map[string]int)
	for _, term := range MajorTerms() {
		seen[term.Key]++
	}
	for _, term := range MinorTerms() {
		seen[term.Key]++
	}

	for _, key := range TermKeys() {
		if seen[key] != 1 {
			t.Errorf("term %s appears %d times across major and minor lists", key, seen[key])
		}
	}
	if len(seen) != TermCount {
		t.Errorf("expected %d distinct keys, got %d", TermCount, len(seen))
	}
}

func TestMajorTermsOrderedBySolarMonth(t *testing.T) {
	for i, term := range MajorTerms() {
		if term.SolarMonthNumber != i+1 {
			t.Errorf("position %d holds %s with solar month %d", i, term.Key, term.SolarMonthNumber)
		}
		if !term.MarksMonthBoundary {
			t.Errorf("%s should mark a month boundary", term.Key)
		}
	}

	major := MajorTerms()
	if major[0].Key != LiChun || major[11].Key != XiaoHan {
		t.Errorf("expected liChun first and xiaoHan last, got %s and %s", major[0].Key, major[11].Key)
	}
}

func TestMinorTermsHaveNoMonthNumber(t *testing.T) {
	for _, term := range MinorTerms() {
		if term.SolarMonthNumber != 0 || term.MarksMonthBoundary {
			t.Errorf("minor term %s should not carry month boundary data", term.Key)
		}
		if term.Category != models.CategoryMinor {
			t.Errorf("minor term %s has category %s", term.Key, term.Category)
		}
	}
}

func TestTermDatesAreValid(t *testing.T) {
	for _, term := range Terms() {
		if term.Month < 1 || term.Month > 12 {
			t.Errorf("%s has invalid month %d", term.Key, term.Month)
		}
		if term.Day < 1 || term.Day > 28 {
			t.Errorf("%s has day %d outside the safe range", term.Key, term.Day)
		}
		if term.Name == "" || term.EnglishName == "" || term.Typical == "" || term.Description == "" {
			t.Errorf("%s has empty descriptive fields", term.Key)
		}
	}
}

func TestLookup(t *testing.T) {
	term, ok := Lookup(LiChun)
	if !ok {
		t.Fatal("expected liChun to exist")
	}
	if term.Month != 2 || term.Day != 4 {
		t.Errorf("expected liChun on 02-04, got %02d-%02d", term.Month, term.Day)
	}
	if term.Name != "Li Chun (立春)" {
		t.Errorf("unexpected name: %s", term.Name)
	}

	if _, ok := Lookup("notATerm"); ok {
		t.Error("expected unknown key lookup to fail")
	}
}

func TestTermsReturnsCopy(t *testing.T) {
	terms := Terms()
	terms[0].Day = 99

	if Terms()[0].Day == 99 {
		t.Error("modifying returned slice changed the term table")
	}
}

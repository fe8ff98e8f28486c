package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Error creating sensor definition file %s (%v)", name, err)
	}
}

func TestLoad(t *testing.T) {
	expected := []Sensor{
		{
			Name:          "home_livingroom",
			SpreadsheetID: "1DGjbXkpqrkglqMmGkD95zWBSfHBzGcjPj48pBIQ8Isa",
			Pin:           4,
		},
		{
			Name:          "home_outside",
			SpreadsheetID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			Pin:           17,
		},
	}

	dir := t.TempDir()

	write(t, dir, "home_livingroom.txt", "id\t1DGjbXkpqrkglqMmGkD95zWBSfHBzGcjPj48pBIQ8Isa\npin\t4\nname\thome_livingroom\n")
	write(t, dir, "home_outside.txt", "id\t1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\npin\t17\nname\thome_outside\n")
	write(t, dir, "office.txt", "id\tXYZ\npin\t22\nname\toffice\n")

	sensors, err := Load(dir, []string{"home_livingroom", "home_outside"})
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if !reflect.DeepEqual(sensors, expected) {
		t.Errorf("Incorrect sensor list\n   expected: %+v\n   got:      %+v", expected, sensors)
	}
}

func TestLoadMatchesSubstrings(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "home_livingroom_2021-06-01.txt", "id\tABC123\npin\t4\nname\thome_livingroom\n")

	sensors, err := Load(dir, []string{"home_livingroom"})
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if len(sensors) != 1 {
		t.Fatalf("Expected date-suffixed file name to match, got %v definitions", len(sensors))
	}
}

func TestLoadExcludesUnmatchedFiles(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "garage.txt", "id\tABC123\npin\t4\nname\tgarage\n")

	sensors, err := Load(dir, []string{"home_livingroom"})
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if len(sensors) != 0 {
		t.Errorf("Expected no matched definitions, got %v", len(sensors))
	}
}

func TestLoadIgnoresExtensionWhenMatching(t *testing.T) {
	dir := t.TempDir()

	// allow-list entry matches the base name only, not the '.txt'
	write(t, dir, "home.txt", "id\tABC123\npin\t4\nname\thome\n")

	sensors, err := Load(dir, []string{"home.txt"})
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if len(sensors) != 0 {
		t.Errorf("Expected extension-stripped base name not to match, got %v definitions", len(sensors))
	}
}

func TestLoadWithMalformedLine(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "home_livingroom.txt", "id\tABC123\npin 4 extra\nname\thome_livingroom\n")

	if _, err := Load(dir, []string{"home_livingroom"}); err == nil {
		t.Errorf("Expected error for malformed definition line, got:%v", err)
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected parse error to identify line 2, got:%v", err)
	}
}

func TestLoadWithMissingKey(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "home_livingroom.txt", "id\tABC123\nname\thome_livingroom\n")

	if _, err := Load(dir, []string{"home_livingroom"}); err == nil {
		t.Errorf("Expected error for missing 'pin' key, got:%v", err)
	}
}

func TestLoadWithInvalidPin(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "home_livingroom.txt", "id\tABC123\npin\tfour\nname\thome_livingroom\n")

	if _, err := Load(dir, []string{"home_livingroom"}); err == nil {
		t.Errorf("Expected error for non-numeric GPIO pin, got:%v", err)
	}
}

func TestLoadWithMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-directory"), []string{"home_livingroom"}); err == nil {
		t.Errorf("Expected error for missing definitions directory, got:%v", err)
	}
}

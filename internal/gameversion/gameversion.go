package gameversion

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// GameVersion identifies one extraction snapshot, e.g. "1.04.1". The raw
// string is kept as written so directory names with leading zeros survive
// a parse/format round trip.
type GameVersion struct {
	raw   string
	parts []int
}

func Parse(s string) (GameVersion, error) {
	if strings.TrimSpace(s) == "" {
		return GameVersion{}, fmt.Errorf("empty game version")
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 || strings.TrimSpace(field) != field || field == "" {
			return GameVersion{}, fmt.Errorf("invalid game version %q", s)
		}
		parts = append(parts, n)
	}

	return GameVersion{raw: s, parts: parts}, nil
}

func (v GameVersion) String() string {
	return v.raw
}

func (v GameVersion) IsZero() bool {
	return v.raw == ""
}

// Compare orders versions numerically per segment; a missing segment
// counts as zero, so "1.04" and "1.04.0" are equal.
func (v GameVersion) Compare(other GameVersion) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v GameVersion) Less(other GameVersion) bool {
	return v.Compare(other) < 0
}

// Discover lists subdirectories of dir whose names parse as game versions,
// newest first. Non-version entries are skipped silently.
func Discover(dir string) ([]GameVersion, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering game versions: %w", err)
	}

	var versions []GameVersion
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := Parse(entry.Name())
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[j].Less(versions[i])
	})

	return versions, nil
}

// Latest returns the newest discovered version under dir.
func Latest(dir string) (GameVersion, error) {
	versions, err := Discover(dir)
	if err != nil {
		return GameVersion{}, err
	}
	if len(versions) == 0 {
		return GameVersion{}, fmt.Errorf("no game versions found in %s", dir)
	}
	return versions[0], nil
}

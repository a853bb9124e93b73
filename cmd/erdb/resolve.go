package main

import (
	"fmt"

	"erdb/internal/config"
	"erdb/internal/gameversion"
	"erdb/internal/generate"
)

// resolveGamedataVersion picks the snapshot to read params from: the
// --gamedata-version flag when given, otherwise the newest version found
// under the gamedata root.
func resolveGamedataVersion(cfg *config.ProjectConfig, flag string) (gameversion.GameVersion, error) {
	if flag != "" {
		return gameversion.Parse(flag)
	}
	return gameversion.Latest(cfg.Paths.Gamedata)
}

// resolveOutputVersion picks the generated database set to act on: the
// flag when given, otherwise the version recorded by the last generate.
func resolveOutputVersion(cfg *config.ProjectConfig, flag string) (string, error) {
	if flag != "" {
		if _, err := gameversion.Parse(flag); err != nil {
			return "", err
		}
		return flag, nil
	}
	latest, err := generate.ReadLatestVersion(cfg.Paths.Output)
	if err != nil {
		return "", fmt.Errorf("no --gamedata-version given and no generated databases found: %w", err)
	}
	return latest, nil
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Local overrides come before the shared file. godotenv never
// overwrites variables that are already set, so OS-level env always
// wins, and .env.local wins over .env.
var dotenvCandidates = []string{".env.local", ".env"}

// loadDotEnv applies whichever candidate files exist and reports the
// ones that were read, for the startup log.
func loadDotEnv() []string {
	var applied []string
	for _, name := range dotenvCandidates {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			applied = append(applied, name)
		}
	}
	return applied
}

// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

var envLoaded = false

func LoadEnvFile() {
	if envLoaded {
		return
	}
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			envFile := args[i+1]
			fmt.Printf("Loading environment variables from file: %s\n", envFile)
			if err := loadEnvFrom(envFile); err != nil {
				fmt.Printf("Failed to load env file: %s\n", err)
			}
			envLoaded = true
			return
		}
	}
	envLoaded = true
}

func loadEnvFrom(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		os.Setenv(strings.TrimSpace(key), strings.Trim(strings.TrimSpace(val), `"`))
	}
	return scanner.Err()
}

// GetEnv returns the value of key, or the first fallback when it is unset.
func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if val := os.Getenv(key); val != "" {
		return val
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := GetEnv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		Logger.Warnf("Invalid duration %q for %s, using %s", raw, key, fallback)
		return fallback
	}
	return d
}

// Package config loads typed configuration from environment variables.
//
// Load reads optional dotenv files with github.com/joho/godotenv and then
// parses the process environment into a struct with
// github.com/caarlos0/env/v11, so `env`, `envDefault`, `envPrefix` and
// `,required` tags all work as documented there. Variables already present
// in the environment are never overridden by dotenv files.
//
// Tests can bypass the process environment with WithEnvironment.
package config

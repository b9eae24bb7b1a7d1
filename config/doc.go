// Package config loads optional TOML defaults for the watfreq CLI flags.
//
// The file is looked up at the path given on the command line, or at
// <user config dir>/watfreq/config.toml. A missing file is not an error;
// a malformed file or unknown keys are fatal.
package config

// Package config manages the airstatus configuration file.
//
// The file lives at $XDG_CONFIG_HOME/airstatus/config.yaml (or
// ~/.config/airstatus/config.yaml) and stores launcher preferences:
// scanner script location, interpreter override, minimum RSSI, debug
// flag, poll interval, and device-name hints. A missing file is never
// an error; defaults apply. Flags override file values.
package config

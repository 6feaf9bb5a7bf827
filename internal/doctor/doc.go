// Package doctor runs read-only diagnostics against the host's
// Bluetooth stack and the scanner environment: interpreter and script
// presence, bluetooth.service state, rfkill block state, and adapter
// visibility. Checks never mutate host state; missing diagnostic tools
// downgrade to warnings.
package doctor

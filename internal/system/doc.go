// Package system reads device state that the command handlers report:
// battery capacity from the kernel power-supply class and last-known
// location fixes recorded per provider.
package system

package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"remotesms/internal/domain"
)

// DefaultPowerSupplyDir is where Linux exposes power supplies.
const DefaultPowerSupplyDir = "/sys/class/power_supply"

// ErrNoBattery is returned when no power supply of type Battery exists.
var ErrNoBattery = errors.New("no battery found")

// SysfsBattery reads capacity from <Dir>/<supply>/capacity of the first
// supply whose type is "Battery".
type SysfsBattery struct {
	Dir string
}

// NewSysfsBattery returns a reader rooted at dir, or DefaultPowerSupplyDir.
func NewSysfsBattery(dir string) *SysfsBattery {
	if dir == "" {
		dir = DefaultPowerSupplyDir
	}
	return &SysfsBattery{Dir: dir}
}

// Capacity returns the battery charge in percent.
func (b *SysfsBattery) Capacity() (int, error) {
	entries, err := os.ReadDir(b.Dir)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		supply := filepath.Join(b.Dir, e.Name())
		kind, err := readTrimmed(filepath.Join(supply, "type"))
		if err != nil || kind != "Battery" {
			continue
		}
		raw, err := readTrimmed(filepath.Join(supply, "capacity"))
		if err != nil {
			return 0, err
		}
		pct, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("parse capacity %q: %w", raw, err)
		}
		if pct < 0 || pct > 100 {
			return 0, fmt.Errorf("capacity %d out of range", pct)
		}
		return pct, nil
	}
	return 0, ErrNoBattery
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

var _ domain.BatteryReader = (*SysfsBattery)(nil)

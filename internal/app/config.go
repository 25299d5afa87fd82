package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. REMOTESMS_GATEWAY_URL.
const EnvPrefix = "REMOTESMS"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string          `mapstructure:"home"` // state directory, e.g. $HOME/.remotesms
	Zone      string          `mapstructure:"zone"` // IANA zone for reply timestamps; empty is local
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Poll      PollConfig      `mapstructure:"poll"`
	Store     StoreConfig     `mapstructure:"store"`
	Segment   SegmentConfig   `mapstructure:"segment"`
	System    SystemConfig    `mapstructure:"system"`
	Telephony TelephonyConfig `mapstructure:"telephony"`
	Log       LogConfig       `mapstructure:"log"`
}

// GatewayConfig locates the SMS gateway and this device's mailbox on it.
type GatewayConfig struct {
	URL     string `mapstructure:"url"`
	Address string `mapstructure:"address"`
}

// PollConfig controls the serve loop.
type PollConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Limit    int           `mapstructure:"limit"`
}

// StoreConfig holds the key the credential record is sealed under.
type StoreConfig struct {
	Key string `mapstructure:"key"`
}

// SegmentConfig holds reply segment limits in runes.
type SegmentConfig struct {
	Single int `mapstructure:"single"`
	Multi  int `mapstructure:"multi"`
}

// SystemConfig locates the battery and location sources.
type SystemConfig struct {
	PowerSupplyDir string `mapstructure:"power_supply_dir"`
	LocationDir    string `mapstructure:"location_dir"`
}

// TelephonyConfig locates the call-log and SMS database.
type TelephonyConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LogConfig selects level and output format ("auto", "console" or "json").
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewViper returns a viper instance with defaults and env binding set up.
// Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("home", "")
	v.SetDefault("zone", "")
	v.SetDefault("gateway.url", "http://127.0.0.1:8080")
	v.SetDefault("gateway.address", "device")
	v.SetDefault("poll.interval", 2*time.Second)
	v.SetDefault("poll.limit", 20)
	v.SetDefault("store.key", "")
	v.SetDefault("segment.single", 160)
	v.SetDefault("segment.multi", 153)
	v.SetDefault("system.power_supply_dir", "/sys/class/power_supply")
	v.SetDefault("system.location_dir", "")
	v.SetDefault("telephony.db_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads config.toml from the home directory (or REMOTESMS_CONFIG) when
// present and resolves home-relative defaults.
func Load(v *viper.Viper) (Config, error) {
	home := v.GetString("home")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".remotesms")
		v.Set("home", home)
	}

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(home)
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.System.LocationDir == "" {
		c.System.LocationDir = filepath.Join(c.Home, "location")
	}
	if c.Telephony.DBPath == "" {
		c.Telephony.DBPath = filepath.Join(c.Home, "telephony.db")
	}
	return c, c.validate()
}

// ZoneLocation resolves Zone, falling back to time.Local.
func (c Config) ZoneLocation() (*time.Location, error) {
	if c.Zone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Zone)
}

func (c Config) validate() error {
	if c.Poll.Limit < 0 {
		return fmt.Errorf("poll.limit must not be negative")
	}
	if c.Segment.Single < 0 || c.Segment.Multi < 0 || c.Segment.Multi > c.Segment.Single {
		return fmt.Errorf("segment limits must satisfy 0 <= multi <= single")
	}
	if strings.TrimSpace(c.Gateway.Address) == "" {
		return fmt.Errorf("gateway.address is required")
	}
	return nil
}

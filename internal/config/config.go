package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	User       UserConfig       `mapstructure:"user"`
	Game       GameConfig       `mapstructure:"game"`
	Layout     LayoutConfig     `mapstructure:"layout"`
	Editor     EditorConfig     `mapstructure:"editor"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Theme      ThemeConfig      `mapstructure:"theme"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig points the logger at a file; the TUI owns stdout.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// UserConfig identifies who is drawing and where posts go.
// An empty Username means nobody is signed in.
type UserConfig struct {
	Username  string `mapstructure:"username"`
	Subreddit string `mapstructure:"subreddit"`
}

// GameConfig holds the word stage timing.
type GameConfig struct {
	CardDrawDuration int           `mapstructure:"card_draw_duration"` // seconds
	TickInterval     time.Duration `mapstructure:"tick_interval"`
}

// LayoutConfig is the history grid geometry, in terminal cells.
type LayoutConfig struct {
	TileSize     int `mapstructure:"tile_size"`
	TileGap      int `mapstructure:"tile_gap"`
	OuterPadding int `mapstructure:"outer_padding"`
	MinWidth     int `mapstructure:"min_width"`
	RowsPerPage  int `mapstructure:"rows_per_page"`
}

// EditorConfig holds canvas settings.
type EditorConfig struct {
	CanvasSize int `mapstructure:"canvas_size"`
}

// NavigationConfig holds the external opener used for post links.
type NavigationConfig struct {
	Opener string `mapstructure:"opener"`
}

// ThemeConfig holds color tokens.
type ThemeConfig struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Tertiary  string `mapstructure:"tertiary"`
	Shadow    string `mapstructure:"shadow"`
	Orangered string `mapstructure:"orangered"`
}

// UsernamePtr returns the configured user, or nil when none is set.
func (u UserConfig) UsernamePtr() *string {
	name := strings.TrimSpace(u.Username)
	if name == "" {
		return nil
	}
	return &name
}

// Load reads configuration from file and env. Env var overrides use prefix PIXELARY_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PIXELARY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pixelary"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PIXELARY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

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
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "pixelary")
	v.SetDefault("database.path", filepath.Join(dataDir, "pixelary.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "pixelary.log"))
	v.SetDefault("user.username", os.Getenv("USER"))
	v.SetDefault("user.subreddit", "pixelary")
	v.SetDefault("game.card_draw_duration", 20)
	v.SetDefault("game.tick_interval", "900ms")
	v.SetDefault("layout.tile_size", 16)
	v.SetDefault("layout.tile_gap", 2)
	v.SetDefault("layout.outer_padding", 4)
	v.SetDefault("layout.min_width", 24)
	v.SetDefault("layout.rows_per_page", 3)
	v.SetDefault("editor.canvas_size", 16)
	v.SetDefault("navigation.opener", "xdg-open")
	v.SetDefault("theme.primary", "#2A3144")
	v.SetDefault("theme.secondary", "#707070")
	v.SetDefault("theme.tertiary", "#B2B2B2")
	v.SetDefault("theme.shadow", "#000000")
	v.SetDefault("theme.orangered", "#FF4500")
}

// Validate rejects settings the draw flow cannot run with.
func (c Config) Validate() error {
	if c.Game.CardDrawDuration <= 0 {
		return fmt.Errorf("config: game.card_draw_duration must be positive, got %d", c.Game.CardDrawDuration)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("config: game.tick_interval must be positive, got %s", c.Game.TickInterval)
	}
	l := c.Layout
	if l.TileSize <= 0 || l.TileGap < 0 || l.RowsPerPage <= 0 {
		return fmt.Errorf("config: invalid layout tile_size=%d tile_gap=%d rows_per_page=%d", l.TileSize, l.TileGap, l.RowsPerPage)
	}
	if (l.MinWidth-l.OuterPadding)/(l.TileSize+l.TileGap) < 1 {
		return fmt.Errorf("config: layout.min_width %d fits no tile (padding %d, tile %d+%d)", l.MinWidth, l.OuterPadding, l.TileSize, l.TileGap)
	}
	if c.Editor.CanvasSize <= 0 {
		return fmt.Errorf("config: editor.canvas_size must be positive, got %d", c.Editor.CanvasSize)
	}
	return nil
}

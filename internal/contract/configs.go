package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/svisuals/seq4d/schema"
)

// Default values for configuration.
const (
	DefaultFrameStart  = 1
	DefaultFPS         = 24
	DefaultTotalFrames = 250
	DefaultWorkers     = 4
	DefaultPrecision   = 1
	MaxWorkers         = 64
)

// Config holds the validated runtime configuration for a resolution pass.
// Fields that require complex parsing (dates, the group stack) are populated
// by ProcessAndValidate from a ConfigRawInput.
type Config struct {
	SchedulePath string            // Path to the schedule file (positional arg)
	VizStart     time.Time         // Requested visualization start (zero = derive from schedule)
	VizFinish    time.Time         // Requested visualization finish (zero = derive from schedule)
	Date         time.Time         // Query date for snapshot/metrics commands
	Source       schema.DateSource // Which task date set drives the mapping
	FrameStart   int               // First frame of the animation axis
	TotalFrames  int               // Explicit frame total (0 = derive from duration/speed)
	FPS          int               // Frames per second for derived totals
	AnimDuration time.Duration     // Animation duration for the duration mode (0 = unset)
	Speed        float64           // Real-time speed multiplier
	GroupStack   schema.GroupStack // Enable-stack override (nil = use schedule's stack)
	Workers      int               // Number of concurrent workers for record building
	Renderer     schema.RendererKind
	Output       schema.OutputMode
	OutputFile   string
	Precision    int
	UseColor     bool
	Width        int // Terminal width override (0 = auto-detect)
	StoreBackend schema.DatabaseBackend
	StoreConnect string
}

// Clone returns a shallow copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw string inputs from flags that require parsing
// or validation. These fields are bound to Viper keys in cmd.
type ConfigRawInput struct {
	SchedulePathStr string `mapstructure:"-"`
	StartStr        string `mapstructure:"start"`
	FinishStr       string `mapstructure:"finish"`
	DateStr         string `mapstructure:"date"`
	SourceStr       string `mapstructure:"source"`
	FrameStart      int    `mapstructure:"frame-start"`
	TotalFrames     int    `mapstructure:"frames"`
	FPS             int    `mapstructure:"fps"`
	DurationStr     string `mapstructure:"duration"`
	Speed           float64 `mapstructure:"speed"`
	GroupsStr       string `mapstructure:"groups"`
	Workers         int    `mapstructure:"workers"`
	RendererStr     string `mapstructure:"renderer"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Precision       int    `mapstructure:"precision"`
	ColorStr        string `mapstructure:"color"`
	Width           int    `mapstructure:"width"`
	StoreBackendStr string `mapstructure:"store-backend"`
	StoreConnect    string `mapstructure:"store-connect"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and populates the final Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()

	// --- 1. Schedule path ---
	cfg.SchedulePath = input.SchedulePathStr

	// --- 2. Date source ---
	source := schema.DateSource(strings.ToLower(strings.TrimSpace(input.SourceStr)))
	if source == "" {
		source = schema.ScheduleSource
	}
	if _, ok := schema.ValidDateSources[source]; !ok {
		return fmt.Errorf("invalid date source '%s'. must be schedule, actual, early, late, unified", input.SourceStr)
	}
	cfg.Source = source

	// --- 3. Visualization dates ---
	if input.StartStr != "" {
		t, err := ParseDate(input.StartStr, now)
		if err != nil {
			return fmt.Errorf("invalid start date '%s': %w", input.StartStr, err)
		}
		cfg.VizStart = t
	}
	if input.FinishStr != "" {
		t, err := ParseDate(input.FinishStr, now)
		if err != nil {
			return fmt.Errorf("invalid finish date '%s': %w", input.FinishStr, err)
		}
		cfg.VizFinish = t
	}
	if input.DateStr != "" {
		t, err := ParseDate(input.DateStr, now)
		if err != nil {
			return fmt.Errorf("invalid date '%s': %w", input.DateStr, err)
		}
		cfg.Date = t
	}

	// --- 4. Frame axis ---
	if input.FrameStart < 0 {
		return fmt.Errorf("frame-start cannot be negative (received %d)", input.FrameStart)
	}
	cfg.FrameStart = input.FrameStart
	if input.TotalFrames < 0 {
		return fmt.Errorf("frames cannot be negative (received %d)", input.TotalFrames)
	}
	cfg.TotalFrames = input.TotalFrames
	if input.FPS <= 0 {
		return fmt.Errorf("fps must be greater than 0 (received %d)", input.FPS)
	}
	cfg.FPS = input.FPS
	if input.DurationStr != "" {
		d, err := ParseAnimationDuration(input.DurationStr)
		if err != nil {
			return fmt.Errorf("invalid animation duration '%s': %w", input.DurationStr, err)
		}
		cfg.AnimDuration = d
	}
	if input.Speed <= 0 {
		return fmt.Errorf("speed must be greater than 0 (received %g)", input.Speed)
	}
	cfg.Speed = input.Speed

	// --- 5. Group stack override ---
	if input.GroupsStr != "" {
		stack, err := ParseGroupStack(input.GroupsStr)
		if err != nil {
			return err
		}
		cfg.GroupStack = stack
	}

	// --- 6. Workers ---
	if input.Workers <= 0 || input.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d (received %d)", MaxWorkers, input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 7. Renderer, output, precision ---
	renderer := schema.RendererKind(strings.ToLower(input.RendererStr))
	if renderer == "" {
		renderer = schema.NoRenderer
	}
	if _, ok := schema.ValidRendererKinds[renderer]; !ok {
		return fmt.Errorf("invalid renderer '%s'. must be keyframe, procedural, both, none", input.RendererStr)
	}
	cfg.Renderer = renderer

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.UseColor = parseBoolish(input.ColorStr, true)
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 8. Store backend ---
	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackendStr))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackendStr)
	}
	if err := ValidateDatabaseConnectionString(backend, input.StoreConnect); err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreConnect = input.StoreConnect

	return nil
}

// ParseGroupStack parses a stack override of the form "A,B:off,C:on". Each
// entry is a group name with an optional :on/:off suffix; entries default to
// enabled, matching how the schedule file records the stack.
func ParseGroupStack(s string) (schema.GroupStack, error) {
	var stack schema.GroupStack
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, state, found := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid group stack entry %q", part)
		}
		enabled := true
		if found {
			switch strings.ToLower(strings.TrimSpace(state)) {
			case "on", "true", "1", "yes":
				enabled = true
			case "off", "false", "0", "no":
				enabled = false
			default:
				return nil, fmt.Errorf("invalid group stack state %q in %q", state, part)
			}
		}
		stack = append(stack, schema.GroupStackEntry{Group: name, Enabled: enabled})
	}
	return stack, nil
}

// ValidateDatabaseConnectionString validates the connection string for
// database backends. SQLite and None need no connection string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
	default:
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	return nil
}

// parseBoolish interprets yes/no style flag values.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

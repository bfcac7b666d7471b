package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Rana718/petseed/internal/classify"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Database      Database      `json:"database" yaml:"database" mapstructure:"database"`
	Generation    Generation    `json:"generation" yaml:"generation" mapstructure:"generation"`
	Campaign      Campaign      `json:"campaign" yaml:"campaign" mapstructure:"campaign"`
	Schedule      Schedule      `json:"schedule" yaml:"schedule" mapstructure:"schedule"`
	Seasons       Seasons       `json:"seasons" yaml:"seasons" mapstructure:"seasons"`
	Services      Services      `json:"services" yaml:"services" mapstructure:"services"`
	Probabilities Probabilities `json:"probabilities" yaml:"probabilities" mapstructure:"probabilities"`
	Ranges        Ranges        `json:"ranges" yaml:"ranges" mapstructure:"ranges"`

	resolved resolved
}

type Database struct {
	Provider  string `json:"provider" yaml:"provider" mapstructure:"provider"`
	URLEnv    string `json:"url_env" yaml:"url_env" mapstructure:"url_env"`
	BatchSize int    `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`
}

type Generation struct {
	Customers int    `json:"customers" yaml:"customers" mapstructure:"customers"`
	Seed      uint64 `json:"seed" yaml:"seed" mapstructure:"seed"` // 0 = random
}

// Campaign bounds every generated order and request date. Date-only end
// values include the whole day.
type Campaign struct {
	Start string `json:"start" yaml:"start" mapstructure:"start"`
	End   string `json:"end" yaml:"end" mapstructure:"end"`
}

type Schedule struct {
	ServiceHours Hours `json:"service_hours" yaml:"service_hours" mapstructure:"service_hours"`
	MinLeadDays  int   `json:"min_lead_days" yaml:"min_lead_days" mapstructure:"min_lead_days"`
	MaxLeadDays  int   `json:"max_lead_days" yaml:"max_lead_days" mapstructure:"max_lead_days"`
}

// Hours is a [Start:00, End:00) business window for service times.
type Hours struct {
	Start    int  `json:"start" yaml:"start" mapstructure:"start"`
	End      int  `json:"end" yaml:"end" mapstructure:"end"`
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty" mapstructure:"disabled"`
}

func (h Hours) Enabled() bool { return !h.Disabled }

type Seasons struct {
	Warm         Period   `json:"warm" yaml:"warm" mapstructure:"warm"`
	Cold         Period   `json:"cold" yaml:"cold" mapstructure:"cold"`
	WarmKeywords []string `json:"warm_keywords" yaml:"warm_keywords" mapstructure:"warm_keywords"`
	ColdKeywords []string `json:"cold_keywords" yaml:"cold_keywords" mapstructure:"cold_keywords"`
}

// Period is a "MM-DD" interval that may wrap the year end.
type Period struct {
	Start string `json:"start" yaml:"start" mapstructure:"start"`
	End   string `json:"end" yaml:"end" mapstructure:"end"`
}

type Services struct {
	VetServiceID   int64   `json:"vet_service_id" yaml:"vet_service_id" mapstructure:"vet_service_id"`
	AllSpecies     []int64 `json:"all_species" yaml:"all_species" mapstructure:"all_species"`
	VetOnlySpecies []int64 `json:"vet_only_species" yaml:"vet_only_species" mapstructure:"vet_only_species"`
}

type resolved struct {
	campaignStart time.Time
	campaignEnd   time.Time
	warm          classify.Window
	cold          classify.Window
	eligibility   classify.EligibilityTable
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the validated built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

func (c *Config) applyDefaults() {
	d := defaults()

	if c.Database.Provider == "" {
		c.Database.Provider = d.Database.Provider
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = d.Database.URLEnv
	}
	if c.Database.BatchSize == 0 {
		c.Database.BatchSize = d.Database.BatchSize
	}
	if c.Generation.Customers == 0 {
		c.Generation.Customers = d.Generation.Customers
	}
	if c.Campaign.Start == "" {
		c.Campaign.Start = d.Campaign.Start
	}
	if c.Campaign.End == "" {
		c.Campaign.End = d.Campaign.End
	}
	if h := c.Schedule.ServiceHours; !h.Disabled && h.Start == 0 && h.End == 0 {
		c.Schedule.ServiceHours = d.Schedule.ServiceHours
	}
	if c.Schedule.MinLeadDays == 0 {
		c.Schedule.MinLeadDays = d.Schedule.MinLeadDays
	}
	if c.Schedule.MaxLeadDays == 0 {
		c.Schedule.MaxLeadDays = d.Schedule.MaxLeadDays
	}
	if c.Seasons.Warm == (Period{}) {
		c.Seasons.Warm = d.Seasons.Warm
	}
	if c.Seasons.Cold == (Period{}) {
		c.Seasons.Cold = d.Seasons.Cold
	}
	if len(c.Seasons.WarmKeywords) == 0 {
		c.Seasons.WarmKeywords = d.Seasons.WarmKeywords
	}
	if len(c.Seasons.ColdKeywords) == 0 {
		c.Seasons.ColdKeywords = d.Seasons.ColdKeywords
	}
	if c.Services.VetServiceID == 0 {
		c.Services.VetServiceID = d.Services.VetServiceID
	}
	if len(c.Services.AllSpecies) == 0 && len(c.Services.VetOnlySpecies) == 0 {
		c.Services.AllSpecies = d.Services.AllSpecies
		c.Services.VetOnlySpecies = d.Services.VetOnlySpecies
	}

	c.Probabilities.applyDefaults(d.Probabilities)
	c.Ranges.applyDefaults(d.Ranges)
}

// Validate checks every section up front and caches the parsed values the
// generators read.
func (c *Config) Validate() error {
	supportedProviders := []string{"mysql", "postgresql", "postgres", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: unsupported database provider: %s. Supported providers: %v", ErrInvalidConfig, c.Database.Provider, supportedProviders)
	}
	if c.Database.BatchSize < 1 {
		return fmt.Errorf("%w: database.batch_size must be positive", ErrInvalidConfig)
	}
	if c.Generation.Customers < 0 {
		return fmt.Errorf("%w: generation.customers cannot be negative", ErrInvalidConfig)
	}

	start, err := parseCampaignDate(c.Campaign.Start, false)
	if err != nil {
		return fmt.Errorf("%w: campaign.start: %v", ErrInvalidConfig, err)
	}
	end, err := parseCampaignDate(c.Campaign.End, true)
	if err != nil {
		return fmt.Errorf("%w: campaign.end: %v", ErrInvalidConfig, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: campaign.end %s is before campaign.start %s", ErrInvalidConfig, c.Campaign.End, c.Campaign.Start)
	}

	if h := c.Schedule.ServiceHours; h.Enabled() && (h.Start < 0 || h.End > 24 || h.Start >= h.End) {
		return fmt.Errorf("%w: schedule.service_hours must satisfy 0 <= start < end <= 24, got %d-%d", ErrInvalidConfig, h.Start, h.End)
	}
	if c.Schedule.MinLeadDays < 0 || c.Schedule.MinLeadDays > c.Schedule.MaxLeadDays {
		return fmt.Errorf("%w: schedule lead days %d-%d", ErrInvalidConfig, c.Schedule.MinLeadDays, c.Schedule.MaxLeadDays)
	}

	warm, err := c.Seasons.Warm.window()
	if err != nil {
		return fmt.Errorf("%w: seasons.warm: %v", ErrInvalidConfig, err)
	}
	cold, err := c.Seasons.Cold.window()
	if err != nil {
		return fmt.Errorf("%w: seasons.cold: %v", ErrInvalidConfig, err)
	}

	if err := c.Probabilities.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Ranges.validate(c.Probabilities); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.resolved = resolved{
		campaignStart: start,
		campaignEnd:   end,
		warm:          warm,
		cold:          cold,
		eligibility:   c.Services.table(),
	}
	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL != "" {
		return dbURL, nil
	}
	if dbURL := legacyMySQLURL(c.Database.Provider); dbURL != "" {
		return dbURL, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}

// legacyMySQLURL assembles a URL from DB_HOST, DB_NAME, DB_USER and
// DB_PASSWORD when all but the password are set.
func legacyMySQLURL(provider string) string {
	if provider != "mysql" {
		return ""
	}
	host, name, user := os.Getenv("DB_HOST"), os.Getenv("DB_NAME"), os.Getenv("DB_USER")
	if host == "" || name == "" || user == "" {
		return ""
	}
	return fmt.Sprintf("mysql://%s:%s@%s/%s", user, os.Getenv("DB_PASSWORD"), host, name)
}

// CampaignWindow returns the inclusive bounds for order and request dates.
func (c *Config) CampaignWindow() (time.Time, time.Time) {
	return c.resolved.campaignStart, c.resolved.campaignEnd
}

func (c *Config) SeasonWindows() (warm, cold classify.Window) {
	return c.resolved.warm, c.resolved.cold
}

func (c *Config) Temperature() classify.TemperatureSet {
	return classify.TemperatureSet{Warm: c.Seasons.WarmKeywords, Cold: c.Seasons.ColdKeywords}
}

func (c *Config) Eligibility() classify.EligibilityTable {
	return c.resolved.eligibility
}

func (s Services) table() classify.EligibilityTable {
	t := make(classify.EligibilityTable, len(s.AllSpecies)+len(s.VetOnlySpecies))
	for _, id := range s.VetOnlySpecies {
		t[id] = classify.Subset(s.VetServiceID)
	}
	for _, id := range s.AllSpecies {
		t[id] = classify.All()
	}
	return t
}

func (p Period) window() (classify.Window, error) {
	start, err := classify.ParseMonthDay(p.Start)
	if err != nil {
		return classify.Window{}, err
	}
	end, err := classify.ParseMonthDay(p.End)
	if err != nil {
		return classify.Window{}, err
	}
	return classify.Window{Start: start, End: end}, nil
}

func parseCampaignDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

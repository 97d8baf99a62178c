// =============================================================================
// Event Ticket Sales Summary - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration: output
// locations, CSV parsing settings, locale/currency formatting, and the
// column-mapping profile that ties the platform's export headers to attendee
// record fields.
//
// The configuration file is optional. When it is absent the defaults match
// the standard attendee export of the ticketing platform.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration, loaded from the main
// config.yaml file.
type MainConfig struct {
	// OutputDir is the directory where generated report files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputNameFormat defines the format for report file names, without
	// extension. Placeholders:
	//   {event}     - Event name (sanitized for the filesystem)
	//   {date}      - Current date (YYYY-MM-DD)
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{event}_{date}"
	OutputNameFormat string `yaml:"output_name_format"`

	// Locale is the BCP 47 tag used for sorting dimension keys and for
	// on-screen number formatting.
	// Default: "en"
	Locale string `yaml:"locale"`

	// CurrencySymbol prefixes monetary values in on-screen formatting. CSV
	// output always uses plain fixed 2-decimal numbers.
	// Default: "$"
	CurrencySymbol string `yaml:"currency_symbol"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// CSVSettings contains settings for parsing the input CSV files.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// Columns maps attendee record fields to the export's column headers.
	// Unset entries fall back to the platform's standard header names.
	Columns ColumnMapping `yaml:"columns"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing CSV input files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows in the CSV file.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-indexed row number where the data begins.
	// Default: HeaderRows + 1
	DataStartRow int `yaml:"data_start_row"`
}

// =============================================================================
// COLUMN MAPPING STRUCTURE
// =============================================================================

// ColumnMapping names the export column header for each attendee record
// field. Every field has a default matching the standard export.
type ColumnMapping struct {
	EventName     string `yaml:"event_name"`
	EventDateTime string `yaml:"event_date_time"`
	TicketType    string `yaml:"ticket_type"`
	Paid          string `yaml:"paid"`
	Gateway       string `yaml:"gateway"`
	SalesChannel  string `yaml:"sales_channel"`

	BookingFees         string `yaml:"booking_fees"`
	PassedOnFees        string `yaml:"passed_on_fees"`
	AbsorbedFees        string `yaml:"absorbed_fees"`
	Surcharge           string `yaml:"surcharge"`
	CustomTax           string `yaml:"custom_tax"`
	GatewayAbsorbedFees string `yaml:"gateway_absorbed_fees"`
	Refunds             string `yaml:"refunds"`
	Rebate              string `yaml:"rebate"`
	Earnings            string `yaml:"earnings"`
	RefundedFees        string `yaml:"refunded_fees"`
	DiscountRedeemed    string `yaml:"discount_redeemed"`
	TaxOnSales          string `yaml:"tax_on_sales"`
	TaxOnBookingFees    string `yaml:"tax_on_booking_fees"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration used when no config file is present.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and validates the main configuration file. A missing file is not
// an error: defaults are returned so the tool works out of the box.
func Load(configPath string) (*MainConfig, error) {
	raw, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &MainConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *MainConfig) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{event}_{date}"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.HeaderRows <= 0 {
		cfg.CSVSettings.HeaderRows = 1
	}
	if cfg.CSVSettings.DataStartRow <= 0 {
		cfg.CSVSettings.DataStartRow = cfg.CSVSettings.HeaderRows + 1
	}

	applyColumnDefaults(&cfg.Columns)
}

// applyColumnDefaults fills unset header names with the standard export's
// column headers.
func applyColumnDefaults(c *ColumnMapping) {
	def := func(field *string, header string) {
		if *field == "" {
			*field = header
		}
	}
	def(&c.EventName, "Event Name")
	def(&c.EventDateTime, "Event Date")
	def(&c.TicketType, "Ticket Type")
	def(&c.Paid, "Total Paid")
	def(&c.Gateway, "Payment Gateway")
	def(&c.SalesChannel, "Sales Channel")
	def(&c.BookingFees, "Booking Fees")
	def(&c.PassedOnFees, "Passed On Fees")
	def(&c.AbsorbedFees, "Absorbed Fees")
	def(&c.Surcharge, "Surcharge")
	def(&c.CustomTax, "Custom Tax")
	def(&c.GatewayAbsorbedFees, "Gateway Absorbed Fees")
	def(&c.Refunds, "Refunds")
	def(&c.Rebate, "Rebate")
	def(&c.Earnings, "Earnings")
	def(&c.RefundedFees, "Refunded Fees")
	def(&c.DiscountRedeemed, "Discount Redeemed")
	def(&c.TaxOnSales, "Tax on Sales")
	def(&c.TaxOnBookingFees, "Tax on Booking Fees")
}

// validate checks the configuration for values that would fail later in the
// pipeline.
func validate(cfg *MainConfig) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", cfg.LogLevel)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	if cfg.CSVSettings.DataStartRow <= cfg.CSVSettings.HeaderRows {
		return fmt.Errorf("data_start_row (%d) must be greater than header_rows (%d)",
			cfg.CSVSettings.DataStartRow, cfg.CSVSettings.HeaderRows)
	}
	return nil
}

// LanguageTag returns the parsed locale tag. The locale was validated on
// load; an unparsable tag (possible only on a hand-built config) falls back
// to English.
func (cfg *MainConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

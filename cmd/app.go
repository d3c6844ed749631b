// Package cmd implements the CLI application to manage a bookstore inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bookstore"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the application settings. Every field can be set through the
// environment; the command line flags below override it.
type Config struct {
	InventoryFile     string `envconfig:"BSI_INVENTORY_FILE" default:"books.json"`
	Currency          string `envconfig:"BSI_CURRENCY" default:"USD"`
	LowStockThreshold int    `envconfig:"BSI_LOW_STOCK_THRESHOLD" default:"5"`
	Verbose           bool   `envconfig:"BSI_VERBOSE"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var (
	flagFile    = flag.String("f", "", "Path to the inventory file (overrides BSI_INVENTORY_FILE)")
	flagVerbose = flag.Bool("v", false, "Verbose logging to stderr")

	appConfig Config
	appLogger = zap.NewNop()
)

// Init loads the configuration and builds the application logger. It must be
// called after flag.Parse and before any command executes.
func Init() error {
	if err := envconfig.Process("bsi", &appConfig); err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	level := zapcore.WarnLevel
	if appConfig.Verbose || *flagVerbose {
		level = zapcore.DebugLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	appLogger = logger
	return nil
}

// Commands returns all bsi subcommands in registration order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&searchCmd{},
		&listCmd{},
		&stockCmd{},
		&sellCmd{},
		&restockCmd{},
		&priceCmd{},
		&removeCmd{},
		&logCmd{},
		&valueCmd{},
		&queryCmd{},
		&topicCmd{},
	}
}

// inventoryPath returns the inventory file in effect: flag, then environment,
// then the default books.json.
func inventoryPath() string {
	if *flagFile != "" {
		return *flagFile
	}
	return appConfig.InventoryFile
}

// openInventory loads the inventory file in effect. A malformed file is
// reported on stderr and the command proceeds on the empty fallback, so a
// broken file never locks the user out of the tool.
func openInventory() *bookstore.Inventory {
	inv, err := bookstore.Load(inventoryPath(), bookstore.WithLogger(appLogger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (starting from an empty inventory)\n", err)
	}
	return inv
}

// saveInventory persists the inventory back to the file in effect.
func saveInventory(inv *bookstore.Inventory) subcommands.ExitStatus {
	if err := inv.Save(inventoryPath()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parsePrice parses and validates a non-negative price in the configured
// currency.
func parsePrice(s string) (bookstore.Money, error) {
	price, err := bookstore.ParseMoney(s, appConfig.Currency)
	if err != nil {
		return bookstore.Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if price.IsNegative() {
		return bookstore.Money{}, fmt.Errorf("price cannot be negative: %w", bookstore.ErrInvalidInput)
	}
	return price, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

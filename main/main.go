// Command dnsaudit analyzes the DNS posture of one or more domains and
// reports findings ranked by severity.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/synqronlabs/dnsaudit"
	"github.com/synqronlabs/dnsaudit/dns"
	"github.com/synqronlabs/dnsaudit/export"
)

func main() {
	app := &cli.App{
		Name:      "dnsaudit",
		Usage:     "collect DNS records and check email/domain security best practices",
		ArgsUsage: "[domain ...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "domain to analyze (repeatable; positional arguments work too)",
			},
			&cli.StringSliceFlag{
				Name:    "selector",
				Aliases: []string{"s"},
				Usage:   "DKIM selector to probe (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "record type to analyze (repeatable; default depends on --best-practices)",
			},
			&cli.BoolFlag{
				Name:    "best-practices",
				Aliases: []string{"b"},
				Usage:   "evaluate records against best practices",
			},
			&cli.StringSliceFlag{
				Name:  "nameserver",
				Usage: "DNS server to query, host:port (repeatable; default: system resolvers)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-query timeout",
				Value: 5 * time.Second,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "maximum number of in-flight queries",
				Value: 8,
			},
			&cli.BoolFlag{
				Name:  "org-fallback",
				Usage: "retry DMARC discovery at the organizational domain",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table, csv, json or msgpack",
				Value:   "table",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file; flags take precedence",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var cfg fileConfig
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		cfg = *loaded
	}

	// Flags win over config file values.
	domains := append(c.StringSlice("domain"), c.Args().Slice()...)
	if len(domains) == 0 {
		domains = cfg.Domains
	}
	selectors := c.StringSlice("selector")
	if len(selectors) == 0 {
		selectors = cfg.Selectors
	}
	typeNames := c.StringSlice("type")
	if len(typeNames) == 0 {
		typeNames = cfg.Types
	}
	best := cfg.BestPractices
	if c.IsSet("best-practices") {
		best = c.Bool("best-practices")
	}
	nameservers := c.StringSlice("nameserver")
	if len(nameservers) == 0 {
		nameservers = cfg.Nameservers
	}
	timeout := time.Duration(cfg.Timeout)
	if c.IsSet("timeout") || timeout == 0 {
		timeout = c.Duration("timeout")
	}
	concurrency := cfg.Concurrency
	if c.IsSet("concurrency") || concurrency == 0 {
		concurrency = c.Int("concurrency")
	}
	format := cfg.Format
	if c.IsSet("format") || format == "" {
		format = c.String("format")
	}
	output := cfg.Output
	if c.IsSet("output") {
		output = c.String("output")
	}

	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	req, err := dnsaudit.NewAnalysisRequest(domains, selectors, best)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var types []dnsaudit.RecordType
	for _, name := range typeNames {
		t, err := dnsaudit.ParseRecordType(name)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		types = append(types, t)
	}

	analyzer := dnsaudit.New(dnsaudit.Config{
		Resolver: dns.NewClient(dns.ClientConfig{
			Nameservers: nameservers,
			Timeout:     timeout,
		}),
		Logger:           logger,
		Concurrency:      concurrency,
		QueryTimeout:     timeout,
		DMARCOrgFallback: c.Bool("org-fallback"),
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := analyzer.Run(ctx, req, types...)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if err := writeReport(report, format, output); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	// Scripting affordance: nonzero exit when critical findings exist.
	if report.HasCritical() {
		return cli.Exit("", 1)
	}
	return nil
}

// writeReport renders the report to the output path (or stdout) in the
// requested format.
func writeReport(report *dnsaudit.Report, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if format == "table" {
		return writeTable(w, report)
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	return export.Encode(w, f, report)
}

func writeTable(w io.Writer, report *dnsaudit.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tTYPE\tSELECTOR\tVALUE\tISSUES\tSEVERITY")
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Domain, row.RecordType, row.Selector, row.Value, row.Issues, row.Severity)
	}
	return tw.Flush()
}

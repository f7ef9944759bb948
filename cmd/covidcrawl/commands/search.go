package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"covidcrawl/lib/configutil"
	"covidcrawl/lib/serviceutil"
	"covidcrawl/services/pandemic"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Config struct {
	SeedUrl       string `json:"seed_url"`
	PopulationUrl string `json:"population_url"`
}

const defaultSeedUrl = "https://en.wikipedia.org/wiki/2019%E2%80%9320_coronavirus_pandemic_by_country_and_territory"
const defaultPopulationUrl = "https://en.wikipedia.org/wiki/List_of_countries_and_dependencies_by_population"

var outFile *string

func init() {
	outFile = searchCmd.Flags().String("out", "", "Report file to append to. Defaults to <term>summary.txt.")
	rootCmd.AddCommand(searchCmd)
}

func readTerm(args []string) string {
	term := ""
	if len(args) > 0 {
		term = args[0]
	} else {
		fmt.Print("Enter a country to search: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			term = scanner.Text()
		}
	}
	term = strings.Trim(term, " \n\t")
	return cases.Title(language.English).String(term)
}

var searchCmd = &cobra.Command{
	Use:   "search [term] [--out <path/to/report.txt>]",
	Short: "Summarizes every country whose name contains the term and appends a report.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}
		if cfg.SeedUrl == "" {
			cfg.SeedUrl = defaultSeedUrl
		}
		if cfg.PopulationUrl == "" {
			cfg.PopulationUrl = defaultPopulationUrl
		}

		term := readTerm(args)

		service, err := pandemic.NewService(pandemic.ServiceOptions{
			SeedUrl:       cfg.SeedUrl,
			PopulationUrl: cfg.PopulationUrl,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize crawler", err)
		}

		slog.Info("searching", "term", term)
		summaries, err := service.Search(cmd.Context(), term)
		if err != nil {
			if len(summaries) == 0 {
				serviceutil.Fatal("search failed", err)
			}
			slog.Warn("some countries could not be summarized", "err", err)
		}
		if len(summaries) == 0 {
			slog.Info("no countries matched", "term", term)
			return
		}

		path := *outFile
		if path == "" {
			path = pandemic.ReportPath(term)
		}
		report, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			serviceutil.Fatal("failed to open report file", err)
		}
		defer report.Close()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Country", "Population", "Cases", "Deaths", "Cases/100k", "Deaths/100k"})

		for _, summary := range summaries {
			err := pandemic.WriteSummary(report, summary)
			if err != nil {
				serviceutil.Fatal("failed to write report", err)
			}
			t.AppendRow(table.Row{
				summary.Name,
				summary.Population,
				summary.Cases,
				summary.Deaths,
				fmt.Sprintf("%.1f", summary.CasesPer100k),
				fmt.Sprintf("%.1f", summary.DeathsPer100k),
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()

		slog.Info("report appended", "file", path, "countries", len(summaries))
	},
}

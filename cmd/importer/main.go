package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/safecity/safecity-api/pkg/dataset"
	"github.com/safecity/safecity-api/pkg/riskquery"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	inputFile    = flag.String("i", "final_city_predictions.csv", "prediction table exported by the model pipeline (csv, json or msgpack, optionally .zst/.gz)")
	inputFormat  = flag.String("if", "auto", "input format, auto detects from the extension")
	outputFile   = flag.String("o", "final_city_predictions.msgpack", "table file or bbolt snapshot (.db) the server loads")
	outputFormat = flag.String("of", "auto", "output format, auto detects from the extension")
)

func main() {
	flag.Parse()

	inFormat, err := dataset.ParseFormat(*inputFormat)
	if err != nil {
		log.Fatal(err)
	}
	outFormat, err := dataset.ParseFormat(*outputFormat)
	if err != nil {
		log.Fatal(err)
	}

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/3]Reading prediction table..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	start := time.Now()
	table, err := dataset.Load(dataset.Source{Path: *inputFile, Format: inFormat})
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][2/3]Writing " + *outputFile + "...")
	err = dataset.Write(dataset.Source{Path: *outputFile, Format: outFormat}, table.Records())
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][3/3]Verifying output...")
	written, err := dataset.Load(dataset.Source{Path: *outputFile, Format: outFormat})
	if err != nil {
		log.Fatal(err)
	}
	if written.Len() != table.Len() {
		log.Fatalf("verification failed: wrote %d rows, read back %d", table.Len(), written.Len())
	}
	bar.Add(1)
	fmt.Println("")

	stats := riskquery.NewRiskQuery(written).OverallStatistics()
	fmt.Printf("imported %d rows, %d cities (High %d, Medium %d, Low %d) into %s in %s\n",
		stats.TotalIncidents, stats.TotalCities, stats.CitiesByRisk.High, stats.CitiesByRisk.Medium,
		stats.CitiesByRisk.Low, *outputFile, time.Since(start).Round(time.Millisecond))
}

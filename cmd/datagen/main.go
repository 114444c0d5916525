// Command datagen writes a synthetic CSV dataset in the bucket layout the
// gcs source reads. Sync the output directory to a bucket to serve it:
//
//	datagen -out ./fixtures -companies 12 -years 2022,2023,2024
//	gsutil -m rsync -r ./fixtures gs://execap
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/execap/internal/datagen"
)

const defaultCompanies = 10

func main() {
	var (
		outDir    = flag.String("out", "./fixtures", "Output directory for generated CSV files")
		companies = flag.Int("companies", defaultCompanies, "Number of companies to generate")
		years     = flag.String("years", strconv.Itoa(time.Now().Year()-1), "Comma-separated fiscal years")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Random seed (fixed seed gives reproducible output)")
	)
	flag.Parse()

	parsed, err := parseYears(*years)
	if err != nil {
		os.Stderr.WriteString("invalid -years: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &datagen.Config{
		OutDir:    *outDir,
		Companies: *companies,
		Years:     parsed,
		Seed:      *seed,
	}
	if err := datagen.Run(cfg); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func parseYears(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}

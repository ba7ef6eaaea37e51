package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scourdata/scour"
	"github.com/scourdata/scour/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "Scour Data Cleaning CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: scour-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --input FILE\n\t\tInput CSV file (required)\n")
	fmt.Fprintf(os.Stderr, "  --profile\n\t\tPrint a data quality report and exit\n")
	fmt.Fprintf(os.Stderr, "  --clean\n\t\tClean the dataset and print the cleaning summary\n")
	fmt.Fprintf(os.Stderr, "  --output FILE\n\t\tWrite the cleaned dataset to FILE (with --clean)\n")
	fmt.Fprintf(os.Stderr, "  --config FILE\n\t\tRead pipeline options from a YAML or JSON file\n")
	fmt.Fprintf(os.Stderr, "  --outliers\n\t\tEnable the outlier capping stage\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	inputFlag := flag.String("input", "", "Input CSV file")
	outputFlag := flag.String("output", "", "Output CSV file for the cleaned dataset")
	profileFlag := flag.Bool("profile", false, "Print a data quality report")
	cleanFlag := flag.Bool("clean", false, "Clean the dataset")
	configFlag := flag.String("config", "", "Pipeline options file (YAML or JSON)")
	outliersFlag := flag.Bool("outliers", false, "Enable the outlier capping stage")

	flag.Usage = customUsage
	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	if *inputFlag == "" || (!*profileFlag && !*cleanFlag) {
		flag.Usage()
		os.Exit(1)
	}

	ds, err := scour.ReadCSVFile(*inputFlag)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	defer ds.Release()

	if *profileFlag {
		runProfile(ds)
	}
	if *cleanFlag {
		runClean(ds, *configFlag, *outliersFlag, *outputFlag)
	}
}

func runProfile(ds *scour.Dataset) {
	report := scour.Profile(ds)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("rendering quality report: %v", err)
	}
	fmt.Println(string(out))
}

func runClean(ds *scour.Dataset, configPath string, outliers bool, outputPath string) {
	opts := scour.DefaultOptions()
	if configPath != "" {
		loaded, err := scour.LoadOptions(configPath)
		if err != nil {
			log.Fatalf("loading options: %v", err)
		}
		opts = loaded
	}
	if outliers {
		opts.HandleOutliers = true
	}

	cleaned, report, err := scour.AutoClean(ds, opts)
	if err != nil {
		log.Fatalf("cleaning: %v", err)
	}
	defer cleaned.Release()

	fmt.Println(scour.RenderSummary(report))

	if outputPath != "" {
		if err := scour.WriteCSVFile(outputPath, cleaned); err != nil {
			log.Fatalf("writing output: %v", err)
		}
		fmt.Printf("\nCleaned dataset written to %s\n", outputPath)
	}
}

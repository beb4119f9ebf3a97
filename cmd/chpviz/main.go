// Command chpviz renders a bar chart of the S-state distillation circuit's
// fault-classification census: for each number of simultaneous ancilla Z
// faults, how many of that weight's combinations came back good, caught,
// a victim, or an uncaught ERROR.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/chp/distill"
)

var outcomeLabels = []string{"good", "caught", "victim", "ERROR"}

func main() {
	maxWeight := flag.Int("max-weight", 3, "largest simultaneous fault weight to classify (0..7)")
	outPath := flag.String("out", "fault_census.html", "output HTML path")
	flag.Parse()

	if *maxWeight < 0 || *maxWeight > 7 {
		log.Fatalf("max-weight must be in [0, 7], got %d", *maxWeight)
	}

	weights := make([]string, 0, *maxWeight+1)
	series := make(map[string][]opts.BarData, len(outcomeLabels))
	for _, label := range outcomeLabels {
		series[label] = nil
	}

	for w := 0; w <= *maxWeight; w++ {
		counts, err := distill.FaultClassify(w)
		if err != nil {
			log.Fatalf("classify weight %d: %v", w, err)
		}
		weights = append(weights, fmt.Sprintf("%d", w))
		for _, label := range outcomeLabels {
			series[label] = append(series[label], opts.BarData{Value: counts[label]})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "S-state distillation fault census",
			Subtitle: "counts by outcome, per simultaneous fault weight",
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	bar.SetXAxis(weights)
	for _, label := range outcomeLabels {
		bar.AddSeries(label, series[label])
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println("Fault census chart:", *outPath)
}

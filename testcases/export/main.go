// Command export writes the geometry of all test cases to JSON, for
// comparison between versions of the generator.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/composition"
	"seehuhn.de/go/composition/plot"
	"seehuhn.de/go/composition/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/outputs.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string         `json:"name"`
	Output *plot.Document `json:"output"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	pipe := composition.NewPipeline(float64(tc.Width), float64(tc.Height))
	out, err := pipe.Render(tc.Config)
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:   category + "_" + tc.Name,
		Output: plot.NewDocument(out),
	}, nil
}

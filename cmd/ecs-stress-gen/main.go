// Command ecs-stress-gen regenerates the component and system corpus
// compiled into cmd/ecs-stress. The output is rendered from a template
// and run through goimports so the checked-in file stays reviewable.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const corpusTemplate = `// Code generated by ecs-stress-gen; DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/loam/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{.Systems}}
)
{{range $i := iter .Components}}
type Comp{{$i}} struct {
	X float64
	Y float64
	N int64
}
{{end}}
var spawners = []func(*ecs.World, ecs.Entity){
{{- range $i := iter .Components}}
	func(w *ecs.World, e ecs.Entity) {
		ecs.AddComponent(w, e, Comp{{$i}}{X: rand.Float64(), Y: rand.Float64(), N: rand.Int63n(1024)})
	},
{{- end}}
}

// spawnRandomEntity creates an entity carrying numComponents distinct
// random component types. numComponents must not exceed componentCount.
func spawnRandomEntity(w *ecs.World, numComponents int) {
	e := w.NewEntity()
	for _, idx := range rand.Perm(componentCount)[:numComponents] {
		spawners[idx](w, e)
	}
}

// registerGeneratedSystems adds one fixed integration system per slot,
// each bound to its own component table.
func registerGeneratedSystems(w *ecs.World) {
	dt := w.Period()
{{- range $i := iter .Systems}}

	w.AddFixedSystem(ecs.NewSystem(func(q *ecs.Query) {
		ecs.All(q, func(values map[ecs.Entity]*Comp{{$i}}) {
			for _, v := range values {
				v.X += v.Y * dt
				v.N++
			}
		})
	}, ecs.Key[Comp{{$i}}]()).Named("stress{{$i}}"))
{{- end}}
}
`

type corpusParams struct {
	Components int
	Systems    int
}

// renderCorpus produces the formatted source for a corpus of the given
// dimensions.
func renderCorpus(components, systems int) ([]byte, error) {
	tmpl := template.Must(template.New("corpus").Funcs(template.FuncMap{
		"iter": func(n int) []int {
			indices := make([]int, n)
			for i := range indices {
				indices[i] = i
			}
			return indices
		},
	}).Parse(corpusTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, corpusParams{Components: components, Systems: systems}); err != nil {
		return nil, fmt.Errorf("render corpus: %w", err)
	}

	formatted, err := imports.Process("components_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format corpus: %w", err)
	}
	return formatted, nil
}

func main() {
	components := flag.Int("components", 16, "Number of component types to generate.")
	systems := flag.Int("systems", 4, "Number of fixed systems to generate, one per component table.")
	out := flag.String("out", "components_gen.go", "Output path.")
	flag.Parse()

	if *components < 1 {
		log.Fatalf("components must be at least 1, got %d", *components)
	}
	if *systems < 1 || *systems > *components {
		log.Fatalf("systems must be between 1 and components (%d), got %d", *components, *systems)
	}

	formatted, err := renderCorpus(*components, *systems)
	if err != nil {
		log.Fatalf("Failed to generate corpus: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("wrote %s (%d components, %d systems)\n", *out, *components, *systems)
}

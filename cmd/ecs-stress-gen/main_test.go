package main

import (
	"strings"
	"testing"
)

func TestRenderCorpus(t *testing.T) {
	out, err := renderCorpus(4, 2)
	if err != nil {
		t.Fatalf("renderCorpus failed: %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by ecs-stress-gen; DO NOT EDIT.",
		"componentCount = 4",
		"systemCount    = 2",
		"type Comp0 struct {",
		"type Comp3 struct {",
		"func spawnRandomEntity(w *ecs.World, numComponents int) {",
		"func registerGeneratedSystems(w *ecs.World) {",
		`Named("stress0")`,
		`Named("stress1")`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Only the requested counts are emitted.
	if strings.Contains(src, "type Comp4 struct") {
		t.Error("output has a component beyond the requested count")
	}
	if strings.Contains(src, `Named("stress2")`) {
		t.Error("output has a system beyond the requested count")
	}
}

func TestRenderCorpusOneSpawnerPerComponent(t *testing.T) {
	out, err := renderCorpus(3, 1)
	if err != nil {
		t.Fatalf("renderCorpus failed: %v", err)
	}

	if got := strings.Count(string(out), "ecs.AddComponent(w, e, Comp"); got != 3 {
		t.Errorf("expected 3 spawner entries, got %d", got)
	}
}

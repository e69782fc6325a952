package modelconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trafficLightYAML = `
name: traffic-light
description: a three-state traffic light cycle
states:
  - name: red
    props: [stop]
  - name: green
    props: [go]
  - name: yellow
    props: [caution]
edges:
  red: [green]
  green: [yellow]
  yellow: [red]
queries:
  - name: always-eventually-stop
    description: the light always returns to red
    formula:
      op: af
      children:
        - prop: stop
  - name: never-both
    description: stop and go never hold together
    formula:
      op: ag
      children:
        - op: neg
          children:
            - op: and
              children:
                - prop: stop
                - prop: go
`

func TestParseAndRunQueries(t *testing.T) {
	doc, err := Parse([]byte(trafficLightYAML))
	require.NoError(t, err)
	assert.Equal(t, "traffic-light", doc.Name)
	require.Len(t, doc.States, 3)

	m, err := doc.BuildModel()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	results, err := doc.RunQueries(m)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "always-eventually-stop", results[0].Name)
	assert.Len(t, results[0].Satisfying, 3)

	assert.Equal(t, "never-both", results[1].Name)
	assert.Len(t, results[1].Satisfying, 3)
}

func TestBuildRejectsWrongArity(t *testing.T) {
	f := FormulaDoc{Op: "and", Children: []FormulaDoc{{Prop: "p"}}}
	_, err := f.Build()
	assert.Error(t, err)
}

func TestBuildRejectsUnknownOp(t *testing.T) {
	f := FormulaDoc{Op: "nonsense"}
	_, err := f.Build()
	assert.Error(t, err)
}

func TestUnknownStateNameSurfacesAsModelError(t *testing.T) {
	doc := &Document{
		States: []StateDoc{{Name: "a"}},
		Edges:  map[string][]string{"a": {"ghost"}},
	}
	_, err := doc.BuildModel()
	assert.Error(t, err)
}

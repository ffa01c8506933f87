package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/giftflow/flow"
	"github.com/katalvlaran/giftflow/projection"
)

// report is the rendered solve outcome. Node labels are resolved names, never
// raw identifiers.
type report struct {
	RunID string       `json:"run_id"`
	Mode  string       `json:"mode"`
	Value int64        `json:"value"`
	Cost  int64        `json:"cost"`
	Edges []edgeReport `json:"edges"`
	Paths []pathReport `json:"paths"`
}

type edgeReport struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Flow     int64  `json:"flow"`
	Capacity int64  `json:"capacity"`
	Cost     int64  `json:"cost"`
}

type pathReport struct {
	Nodes  []string `json:"nodes"`
	Amount int64    `json:"amount"`
}

func newReport(runID, mode string, res *flow.Result, edges []projection.EdgeFlow, paths []projection.Path) report {
	rep := report{
		RunID: runID,
		Mode:  mode,
		Value: res.Value,
		Cost:  res.Cost,
		Edges: make([]edgeReport, len(edges)),
		Paths: make([]pathReport, len(paths)),
	}
	for i, ef := range edges {
		rep.Edges[i] = edgeReport{
			From:     ef.From.String(),
			To:       ef.To.String(),
			Flow:     ef.Flow,
			Capacity: ef.Capacity,
			Cost:     ef.Edge.Cost,
		}
	}
	for i, p := range paths {
		nodes := make([]string, 0, len(p.Steps)+1)
		for j, st := range p.Steps {
			if j == 0 {
				nodes = append(nodes, st.From.String())
			}
			nodes = append(nodes, st.To.String())
		}
		rep.Paths[i] = pathReport{Nodes: nodes, Amount: p.Amount}
	}

	return rep
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// writeText prints one line per flowing edge and per path:
//
//	value: 5
//	cost: 0
//	edges:
//	  Source -> p1 with 2/7
//	paths:
//	  Source -> p1 -> c1 -> Sink with 1
func (r report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "value: %d\n", r.Value)
	fmt.Fprintf(&b, "cost: %d\n", r.Cost)
	b.WriteString("edges:\n")
	for _, e := range r.Edges {
		fmt.Fprintf(&b, "  %s -> %s with %d/%d\n", e.From, e.To, e.Flow, e.Capacity)
	}
	b.WriteString("paths:\n")
	for _, p := range r.Paths {
		fmt.Fprintf(&b, "  %s with %d\n", strings.Join(p.Nodes, " -> "), p.Amount)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

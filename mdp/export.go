package mdp

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ResultsDocument is the serialized form of a solved model: configuration,
// per-state value function and policy, the derived (s, S) rule, and the
// transport catalog. State indices are encoded as string keys.
type ResultsDocument struct {
	Configuration  Config                          `json:"configuration"`
	ValueFunction  map[string]float64              `json:"value_function"`
	Policy         map[string]int                  `json:"policy"`
	SSPolicy       SSPolicy                        `json:"s_S_policy"`
	TransportModes map[TransportMode]TransportSpec `json:"transport_modes"`
}

// Results snapshots the solver's current tables into an exportable
// document. Call after Solve; an unsolved solver exports all zeros.
func (s *Solver) Results() ResultsDocument {
	doc := ResultsDocument{
		Configuration:  s.cfg,
		ValueFunction:  make(map[string]float64, s.NumStates()),
		Policy:         make(map[string]int, s.NumStates()),
		SSPolicy:       s.SummarizePolicy(),
		TransportModes: TransportModes(),
	}
	for state := 0; state <= s.cfg.MaxInventory; state++ {
		key := strconv.Itoa(state)
		doc.ValueFunction[key] = s.value[state]
		doc.Policy[key] = s.policy[state]
	}
	return doc
}

// ExportResults writes the results document to path as indented JSON and
// returns the document.
func (s *Solver) ExportResults(path string) (ResultsDocument, error) {
	doc := s.Results()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ResultsDocument{}, fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ResultsDocument{}, fmt.Errorf("write results file: %w", err)
	}
	return doc, nil
}

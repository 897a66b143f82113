package main

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/ViriLain/learning-games-site/internal/kenken"
	"github.com/ViriLain/learning-games-site/internal/symbolgrid"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type newPuzzleParams struct {
	Preset string `schema:"preset,required"`
}

// Each request generates from its own rand: the pipelines share no state,
// so concurrent requests need no locking.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	return w.Write(payload)
}

func handlePresets(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string][]string{
		"symbolgrid": symbolgrid.PresetNames,
		"kenken":     kenken.PresetNames,
	})
}

// symbolGridResponse decorates the puzzle with the glyph and color tables
// the client renders symbols with.
type symbolGridResponse struct {
	*symbolgrid.Puzzle
	Symbols []string `json:"symbols"`
	Colors  []string `json:"colors"`
}

func handleNewSymbolGrid(w http.ResponseWriter, r *http.Request) {
	var params newPuzzleParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preset, ok := symbolgrid.Presets[params.Preset]
	if !ok {
		http.Error(w, "unknown preset", http.StatusBadRequest)
		return
	}

	puzzle, err := symbolgrid.Generate(preset, newRand())
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	sendJSON(w, symbolGridResponse{
		Puzzle:  puzzle,
		Symbols: symbolgrid.Symbols[:puzzle.NumSymbols],
		Colors:  symbolgrid.SymbolColors[:puzzle.NumSymbols],
	})
}

func handleNewKenKen(w http.ResponseWriter, r *http.Request) {
	var params newPuzzleParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preset, ok := kenken.Presets[params.Preset]
	if !ok {
		http.Error(w, "unknown preset", http.StatusBadRequest)
		return
	}

	puzzle, err := kenken.Generate(preset, newRand())
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	sendJSON(w, puzzle)
}

func writeGenerateError(w http.ResponseWriter, err error) {
	var (
		sgConfig *symbolgrid.ConfigError
		kkConfig *kenken.ConfigError
	)
	if errors.As(err, &sgConfig) || errors.As(err, &kkConfig) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.WithError(err).Error("puzzle generation failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

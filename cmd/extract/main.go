// Command extract reads plain resume text on stdin and writes the
// structured extraction result as JSON on stdout. Structural failures
// (short input, unavailable recognizer) exit non-zero with an error-shaped
// object; heuristic misses are normal and never fail the run.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"resume-extract/internal/config"
	"resume-extract/internal/extract"
	"resume-extract/internal/ner"
)

func main() {
	cfg := config.Load()

	recognizer, err := ner.NewLLMRecognizer(cfg.NERProvider, cfg.NERAPIKey, cfg.NERModel, cfg.OllamaURL)
	if err != nil {
		emit(os.Stderr, &extract.ErrorResult{Error: err.Error(), Skipped: true})
		os.Exit(1)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		emit(os.Stderr, &extract.ErrorResult{Error: err.Error(), Skipped: true})
		os.Exit(1)
	}

	text := string(data)
	if err := extract.ValidateInput(text); err != nil {
		emit(os.Stdout, &extract.ErrorResult{Error: "Input text too short", Skipped: true})
		os.Exit(1)
	}

	extractor := extract.New(recognizer, extract.Config{})

	result, err := extractor.Extract(text)
	if err != nil {
		// Soft failure: the caller still gets a well-formed object.
		emit(os.Stdout, extract.ErrorResultFrom(err))
		return
	}

	emit(os.Stdout, result)
}

func emit(w io.Writer, payload interface{}) {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatal("encode result: ", err)
	}
	fmt.Fprintln(w, string(out))
}

// Trainer builds a frequency model from a corpus and exports it as a
// "word count" dictionary file. Optionally emits a confusion set and runs a
// word-level evaluation of the resulting corrector.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/corpus"
	sc "github.com/Saikrishna5339/Auto-text-corrector/internal/corrector"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/evaluate"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/suggest"
)

func main() {
	corpusPath := getenv("CORPUS_PATH", "")
	dictionaryPath := getenv("DICTIONARY_PATH", "")
	outputPath := getenv("OUTPUT_PATH", "frequencies.txt")
	confusionPath := getenv("CONFUSION_PATH", "")
	evalSize := getEnvInt("EVAL_SIZE", 0)

	if corpusPath == "" && dictionaryPath == "" {
		log.Fatal("nothing to do: set CORPUS_PATH and/or DICTIONARY_PATH")
	}

	model := frequency.NewModel()
	var words []string

	if dictionaryPath != "" {
		w, err := corpus.LoadWordList(dictionaryPath, model)
		if err != nil {
			log.Fatalf("dictionary load failed: %v", err)
		}
		words = append(words, w...)
		log.Printf("loaded dictionary %s: %d words", dictionaryPath, len(w))
	}
	if corpusPath != "" {
		var w []string
		var err error
		if strings.EqualFold(filepath.Ext(corpusPath), ".csv") {
			w, err = corpus.LoadCSV(corpusPath, model)
		} else {
			w, err = corpus.LoadTextFile(corpusPath, model)
		}
		if err != nil {
			log.Fatalf("corpus load failed: %v", err)
		}
		words = append(words, w...)
		log.Printf("loaded corpus %s: %d tokens", corpusPath, len(w))
	}

	if err := corpus.ExportWordFrequencies(outputPath, model); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("exported %d words to %s", model.Len(), outputPath)

	if confusionPath != "" {
		if err := writeConfusionSet(confusionPath, model); err != nil {
			log.Fatalf("confusion set export failed: %v", err)
		}
	}

	if evalSize > 0 {
		runEvaluation(model, words, evalSize)
	}
}

func writeConfusionSet(path string, model *frequency.Model) error {
	set := corpus.ConfusionSet(model, 1000)
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(f, "%s %s\n", k, set[k]); err != nil {
			f.Close()
			return err
		}
	}
	log.Printf("exported %d confusion pairs to %s", len(set), path)
	return f.Close()
}

func runEvaluation(model *frequency.Model, words []string, size int) {
	var suggester suggest.Suggester
	if checker, err := suggest.NewChecker(words); err == nil {
		suggester = checker
	}
	corrector := sc.New(sc.DefaultConfig(), model, suggester, nil)
	corrector.AddWords(words)

	rng := rand.New(rand.NewSource(1))
	pairs := evaluate.TestSet(rng, model, size, 0.3, 2)
	res := evaluate.Evaluate(corrector, pairs)
	log.Printf("evaluation over %d words: accuracy=%.4f precision=%.4f recall=%.4f f1=%.4f avg=%s",
		res.Total, res.Accuracy, res.Precision, res.Recall, res.F1, res.AvgTimePerWord)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

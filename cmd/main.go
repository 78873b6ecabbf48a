package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Saikrishna5339/Auto-text-corrector/internal/config"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/corpus"
	sc "github.com/Saikrishna5339/Auto-text-corrector/internal/corrector"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/customdict"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/frequency"
	"github.com/Saikrishna5339/Auto-text-corrector/internal/suggest"
	"github.com/Saikrishna5339/Auto-text-corrector/pkg/options"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := customdict.New(client)

	model := frequency.NewModel()
	words, err := corpus.LoadWordList(cfg.DictionaryPath, model)
	if err != nil {
		log.Printf("warning: dictionary load failed, starting with empty dictionary: %v", err)
	}
	if cfg.CorpusPath != "" {
		corpusWords, err := loadCorpus(cfg.CorpusPath, model)
		if err != nil {
			log.Printf("warning: corpus load failed: %v", err)
		}
		words = append(words, corpusWords...)
	}

	var suggester suggest.Suggester
	if checker, err := suggest.NewChecker(words, options.WithMaxErrors(cfg.MaxEditDistance)); err != nil {
		log.Printf("warning: suggester unavailable: %v", err)
	} else {
		suggester = checker
	}

	corrector := sc.New(sc.Config{MaxEditDistance: cfg.MaxEditDistance}, model, suggester, store)
	corrector.AddWords(words)
	if err := corrector.LoadStored(); err != nil {
		log.Printf("warning: could not load stored custom words: %v", err)
	}
	log.Printf("dictionary ready: %d words, %d total frequency mass", corrector.VocabSize(), model.Total())

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text    string `json:"text"`
			Context bool   `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		corrected := ""
		if req.Context {
			corrected = corrector.CorrectWithContext(req.Text)
		} else {
			corrected = corrector.CorrectText(req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"original":  req.Text,
			"corrected": corrected,
		})
	})

	mux.HandleFunc("/api/v1/correct-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"word":      req.Word,
			"corrected": corrector.CorrectWord(req.Word),
		})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		if err := corrector.AddCustomWord(req.Word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/user-correction", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Misspelled string `json:"misspelled"`
			Correction string `json:"correction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			strings.TrimSpace(req.Misspelled) == "" || strings.TrimSpace(req.Correction) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		if err := corrector.AddUserCorrection(req.Misspelled, req.Correction); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/frequencies", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := model.ExportSorted(w); err != nil {
			log.Printf("frequencies export failed: %v", err)
		}
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}

func loadCorpus(path string, model *frequency.Model) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return corpus.LoadCSV(path, model)
	}
	return corpus.LoadTextFile(path, model)
}

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aamati/groove/groove"
	"github.com/aamati/groove/groove/predictors"
	"github.com/aamati/groove/logging"
	"github.com/aamati/groove/midi"
)

var (
	outCSV   string
	outJSONL string
	maxFiles int
)

func init() {
	extractCmd.Flags().StringVar(&outCSV, "csv", "groove_features.csv", "CSV output path (appended)")
	extractCmd.Flags().StringVar(&outJSONL, "jsonl", "", "optional JSONL log path (appended)")
	extractCmd.Flags().IntVar(&maxFiles, "max-files", 0, "stop after this many files (0 = all)")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [dir or .mid files...]",
	Short: "Extracts groove descriptors from MIDI files",
	Long: `Extracts a groove feature vector and descriptor set from every MIDI
file given (directories are scanned for .mid/.midi) and appends one record
per file to the CSV output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args)
	},
}

// record is one extraction result as persisted to the CSV/JSONL logs
type record struct {
	ID        string `json:"id"`
	File      string `json:"file"`
	Timestamp string `json:"timestamp"`
	groove.Result
}

func runExtract(args []string) error {
	logger := logging.WithFields(logging.Fields{"component": "extract_cmd"})

	paths, err := gatherMidiPaths(args)
	if err != nil {
		return err
	}
	if maxFiles > 0 && len(paths) > maxFiles {
		paths = paths[:maxFiles]
	}
	if len(paths) == 0 {
		return fmt.Errorf("no MIDI files found in %v", args)
	}
	logger.Info("starting extraction", logging.Fields{"files": len(paths)})

	extractor := groove.NewExtractorWithConfig(cfg, predictors.NewDefaultSet(cfg))

	var records []record
	for _, path := range paths {
		perf, err := midi.ReadPerformance(path)
		if err != nil {
			logger.Warn("skipping unreadable file", logging.Fields{"file": path, "error": err.Error()})
			continue
		}

		result, err := extractor.Extract(*perf)
		if err != nil {
			logger.Warn("skipping file", logging.Fields{"file": path, "error": err.Error()})
			continue
		}

		records = append(records, record{
			ID:        uuid.NewString(),
			File:      filepath.Base(path),
			Timestamp: time.Now().Format(time.RFC3339),
			Result:    *result,
		})
	}

	if len(records) == 0 {
		return fmt.Errorf("no files produced a result")
	}

	if err := appendCSV(outCSV, records); err != nil {
		return err
	}
	if outJSONL != "" {
		if err := appendJSONL(outJSONL, records); err != nil {
			return err
		}
	}

	logger.Info("extraction finished", logging.Fields{
		"processed": len(records),
		"skipped":   len(paths) - len(records),
		"csv":       outCSV,
	})
	return nil
}

func gatherMidiPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext == ".mid" || ext == ".midi" {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}

var csvColumns = []string{
	"id", "file", "timestamp",
	"tempo", "swing", "density", "dynamic_range", "energy",
	"mean_note_length", "std_note_length", "velocity_mean", "velocity_std",
	"pitch_mean", "pitch_range", "avg_polyphony", "syncopation",
	"onset_entropy", "instrument_count",
	"timing_feel", "rhythmic_density", "dynamic_intensity",
	"fill_activity", "fx_character",
}

func appendCSV(path string, records []record) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvColumns); err != nil {
			return err
		}
	}

	for _, r := range records {
		v := r.Vector
		d := r.Descriptors
		row := []string{
			r.ID, r.File, r.Timestamp,
			f4(v.Tempo), f4(v.Swing), f4(v.Density), f4(v.DynamicRange), f4(v.Energy),
			f4(v.MeanNoteLength), f4(v.StdNoteLength), f4(v.VelocityMean), f4(v.VelocityStd),
			f4(v.PitchMean), f4(v.PitchRange), f4(v.AvgPolyphony), f4(v.Syncopation),
			f4(v.OnsetEntropy), strconv.Itoa(v.InstrumentCount),
			strconv.Itoa(int(d.TimingFeel)), strconv.Itoa(int(d.RhythmicDensity)),
			strconv.Itoa(int(d.DynamicIntensity)), strconv.Itoa(int(d.FillActivity)),
			strconv.Itoa(int(d.FXCharacter)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func f4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func appendJSONL(path string, records []record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

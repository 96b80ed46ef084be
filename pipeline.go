//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dhgloss/topictools/internal/corpus"
	"github.com/dhgloss/topictools/internal/dtm"
	"github.com/dhgloss/topictools/internal/features"
	"github.com/dhgloss/topictools/internal/lnch"
	"github.com/dhgloss/topictools/internal/tokenize"
	"github.com/dhgloss/topictools/internal/topics"
	"github.com/dhgloss/topictools/internal/vv"
)

//
// THE PIPELINE STAGES
//
// read -> tokenize -> matrix -> filter -> model -> tables; every stage hands
// a fresh value to the next one, so any of them can be inspected in isolation
//

// loadcorpus - glob the corpus directory and read every document
func loadcorpus() (*corpus.Corpus, error) {
	const (
		FYI = "read %d documents from '%s'"
	)

	paths, err := corpus.GlobCorpus(lnch.Config.CorpusDir, lnch.Config.CorpusGlob)
	if err != nil {
		return nil, err
	}

	c, err := corpus.ReadCorpus(paths)
	if err != nil {
		return nil, err
	}

	Msg.FYI(fmt.Sprintf(FYI, len(c.Docs), lnch.Config.CorpusDir))
	return c, nil
}

// buildmatrix - the document-term matrix in whichever mode the config picked
func buildmatrix(tokenized [][]string, labels []string) (*dtm.Matrix, error) {
	const (
		FYI = "built %s %d x %d document-term matrix holding %d tokens"
	)

	var m *dtm.Matrix
	var err error
	if lnch.Config.SparseMatrix {
		m, err = dtm.NewSparseParallel(tokenized, labels, lnch.Config.WorkerCount)
	} else {
		m, err = dtm.NewDense(tokenized, labels)
	}
	if err != nil {
		return nil, err
	}

	Msg.FYI(fmt.Sprintf(FYI, m.Mode(), m.NumDocs(), m.NumTypes(), m.Total()))
	return m, nil
}

// prunematrix - drop the configured union of stopwords, hapax and extras
func prunematrix(m *dtm.Matrix) (*dtm.Matrix, error) {
	const (
		FYI  = "feature removal: %d stopwords + %d hapax legomena + %d language + %d external = %d distinct features"
		LEFT = "%d of %d token types survive"
	)

	var stops []string
	if lnch.Config.DropStops > 0 {
		stops = features.FindStopwords(m, lnch.Config.DropStops)
	}

	var hapax []string
	if lnch.Config.DropHapax {
		hapax = features.FindHapaxLegomena(m)
	}

	langstops := lnch.ReadLanguageStops(lnch.Config.StopLanguage)

	extrafn := lnch.Config.ExtraStops
	if extrafn == "" {
		extrafn = lnch.DefaultExtraStops()
	}
	extra, err := lnch.ReadExtraStops(extrafn)
	if err != nil {
		return nil, err
	}

	doomed := features.Combine(stops, hapax, langstops, extra)
	if len(doomed) == 0 {
		return m, nil
	}

	Msg.FYI(fmt.Sprintf(FYI, len(stops), len(hapax), len(langstops), len(extra), len(doomed)))

	pruned, err := features.RemoveFeatures(doomed, m)
	if err != nil {
		return nil, err
	}

	Msg.FYI(fmt.Sprintf(LEFT, pruned.NumTypes(), m.NumTypes()))
	return pruned, nil
}

// fitmodel - hand the filtered matrix to the LDA backend
func fitmodel(m *dtm.Matrix) (*topics.Result, error) {
	const (
		FYI = "fit %d topics in %d iterations"
	)

	start := time.Now()

	model := topics.NewModel(lnch.Config.TopicCount)
	model.Iterations = lnch.Config.Iterations
	model.Processes = lnch.Config.WorkerCount

	res, err := model.Fit(m)
	if err != nil {
		return nil, err
	}

	Msg.Timer("M", fmt.Sprintf(FYI, model.Topics, model.Iterations), start, start)
	return res, nil
}

// preparedmatrix - the stages every modeling command shares
func preparedmatrix() (*dtm.Matrix, error) {
	c, err := loadcorpus()
	if err != nil {
		return nil, err
	}

	tokenized := tokenize.Corpus(c.Texts())

	m, err := buildmatrix(tokenized, c.Labels())
	if err != nil {
		return nil, err
	}

	return prunematrix(m)
}

// runpipeline - the whole batch: output lands in the configured directory as CSV
func runpipeline() error {
	const (
		DONE = "wrote '%s' and '%s'"
	)

	m, err := preparedmatrix()
	if err != nil {
		return err
	}

	res, err := fitmodel(m)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(lnch.Config.OutputDir, vv.DIRPERMS); err != nil {
		return err
	}

	dtf := filepath.Join(lnch.Config.OutputDir, vv.DOCTOPICSCSV)
	if err := writetable(dtf, res.DocumentTopics().WriteCSV); err != nil {
		return err
	}

	tkf := filepath.Join(lnch.Config.OutputDir, vv.TOPICKEYSCSV)
	if err := writetable(tkf, res.TopicKeys(lnch.Config.TopicKeyCount).WriteCSV); err != nil {
		return err
	}

	Msg.Timer("A", fmt.Sprintf(DONE, dtf, tkf), vv.LaunchTime, vv.LaunchTime)
	return nil
}

// showpipeline - like runpipeline, but the tables land on the terminal
func showpipeline() error {
	m, err := preparedmatrix()
	if err != nil {
		return err
	}

	res, err := fitmodel(m)
	if err != nil {
		return err
	}

	keys := res.TopicKeys(lnch.Config.TopicKeyCount)
	renderkeys(keys)
	renderdoctopics(res.DocumentTopics(), keys.TopicLabels(3))
	return nil
}

// exportmatrix - the matrix in one of the backend handoff formats
func exportmatrix(format string, raw bool) error {
	const (
		DONE    = "wrote '%s'"
		UNKNOWN = "unknown export format '%s': want csv, mm, bow or tokens"
	)

	c, err := loadcorpus()
	if err != nil {
		return err
	}
	tokenized := tokenize.Corpus(c.Texts())

	if format == "tokens" {
		dir := filepath.Join(lnch.Config.OutputDir, vv.TOKENDIR)
		if err := tokenize.WriteCorpus(dir, tokenized, c.Labels(), vv.WRITEPERMS); err != nil {
			return err
		}
		Msg.NOTE(fmt.Sprintf(DONE, dir))
		return nil
	}

	m, err := buildmatrix(tokenized, c.Labels())
	if err != nil {
		return err
	}
	if !raw {
		if m, err = prunematrix(m); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(lnch.Config.OutputDir, vv.DIRPERMS); err != nil {
		return err
	}

	var fn string
	switch format {
	case "csv":
		fn = filepath.Join(lnch.Config.OutputDir, vv.DTMCSV)
		err = writetable(fn, m.WriteCSV)
	case "mm":
		fn = filepath.Join(lnch.Config.OutputDir, vv.DTMMM)
		err = writetable(fn, m.WriteMatrixMarket)
	case "bow":
		fn = filepath.Join(lnch.Config.OutputDir, vv.BOWJSON)
		err = writebow(fn, m)
	default:
		return fmt.Errorf(UNKNOWN, format)
	}
	if err != nil {
		return err
	}

	Msg.NOTE(fmt.Sprintf(DONE, fn))
	return nil
}

// reportfeatures - the stopword and hapax tables for eyeballing before a run
func reportfeatures() error {
	const (
		HAPAX = "%d hapax legomena"
	)

	c, err := loadcorpus()
	if err != nil {
		return err
	}

	m, err := buildmatrix(tokenize.Corpus(c.Texts()), c.Labels())
	if err != nil {
		return err
	}

	stops := features.FindStopwords(m, lnch.Config.DropStops)
	totals := m.ColumnTotals()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"rank", "token", "count"})
	for i, s := range stops {
		id, _ := m.TypeID(s)
		table.Append([]string{strconv.Itoa(i + 1), s, strconv.Itoa(totals[id])})
	}
	table.Render()

	hapax := features.FindHapaxLegomena(m)
	Msg.MAND(fmt.Sprintf(HAPAX, len(hapax)))
	for _, h := range hapax {
		Msg.PEEK(h)
	}

	return nil
}

//
// TABLE RENDERING AND FILE PLUMBING
//

// rendercorpus - document labels and their filename metadata
func rendercorpus(c *corpus.Corpus, pattern string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"label", "metadata", "bytes"})
	for _, d := range c.Docs {
		md, err := corpus.ParseMetadata(d.Label, pattern)
		meta := ""
		if err == nil {
			for _, k := range []string{"author", "year", "title"} {
				if v, ok := md[k]; ok {
					meta += fmt.Sprintf("%s=%s ", k, v)
				}
			}
		}
		table.Append([]string{d.Label, meta, strconv.Itoa(len(d.Text))})
	}
	table.Render()
}

// renderdoctopics - rows = documents, columns = topics
func renderdoctopics(dt *topics.DocumentTopics, topiclabels []string) {
	const (
		TOPIC = "T%d"
	)

	ntopics := 0
	if len(dt.Shares) > 0 {
		ntopics = len(dt.Shares[0])
	}

	header := []string{"document"}
	for k := 0; k < ntopics; k++ {
		if k < len(topiclabels) && topiclabels[k] != "" {
			header = append(header, topiclabels[k])
		} else {
			header = append(header, fmt.Sprintf(TOPIC, k))
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	for d := range dt.Shares {
		row := []string{dt.Labels[d]}
		for _, s := range dt.Shares[d] {
			row = append(row, strconv.FormatFloat(s, 'f', 3, 64))
		}
		table.Append(row)
	}
	table.Render()
}

// renderkeys - one row per topic, its ranked keys joined
func renderkeys(tk *topics.TopicKeys) {
	if len(tk.Keys) == 0 {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"topic", "keys"})
	for k, labels := 0, tk.TopicLabels(len(tk.Keys[0])); k < len(labels); k++ {
		table.Append([]string{strconv.Itoa(k), truncate(labels[k])})
	}
	table.Render()
}

// truncate - keep table rows inside a sane terminal width
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= vv.TERMINALTEXTWIDTH {
		return s
	}
	return string(r[:vv.TERMINALTEXTWIDTH]) + "..."
}

// rendermalletkeys - topic-keys from a MALLET file; returns short topic labels
func rendermalletkeys(keys [][]string) []string {
	const (
		SHORT = 3
	)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"topic", "keys"})

	labels := make([]string, len(keys))
	for k, kk := range keys {
		short := kk
		if len(short) > SHORT {
			short = short[:SHORT]
		}
		labels[k] = fmt.Sprintf("%s ...", strings.Join(short, " "))
		table.Append([]string{strconv.Itoa(k), truncate(strings.Join(kk, " "))})
	}
	table.Render()
	return labels
}

// renderwordweights - the heaviest (topic, token, weight) rows
func renderwordweights(ww []topics.WordWeight) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"topic", "token", "weight"})
	for _, w := range ww {
		table.Append([]string{strconv.Itoa(w.Topic), w.Token, strconv.FormatFloat(w.Weight, 'f', 6, 64)})
	}
	table.Render()
}

// writetable - open, hand the writer to fn, close; release on every path
func writetable(fn string, write func(w io.Writer) error) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writebow - the gensim-style handoff: labels, vocabulary, and per-doc pairs
func writebow(fn string, m *dtm.Matrix) error {
	payload := struct {
		Labels     []string    `json:"labels"`
		Vocabulary []string    `json:"vocabulary"`
		Docs       [][]dtm.BOW `json:"docs"`
	}{
		Labels:     m.Labels(),
		Vocabulary: m.Vocabulary(),
		Docs:       m.BagOfWords(),
	}

	content, err := json.MarshalIndent(payload, "", vv.JSONINDENT)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, content, vv.WRITEPERMS)
}

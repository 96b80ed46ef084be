//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/dhgloss/topictools/internal/lnch"
	"github.com/dhgloss/topictools/internal/tokenize"
	"github.com/dhgloss/topictools/internal/topics"
	"github.com/dhgloss/topictools/internal/vv"
)

//
// THE COMMAND TREE
//
// config resolution is three layers: built-in defaults, then the yaml config
// file, then whatever flags the user set on this invocation
//

var rootCmd = &cobra.Command{
	Use:   "topictools",
	Short: "corpus preprocessing and topic modeling for plain-text corpora",
	Long: `topictools reads a directory of plain-text documents, tokenizes them,
builds a document-term matrix, strips stopwords and hapax legomena, fits an
LDA topic model, and writes document-topic and topic-key tables.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lnch.ConfigAtLaunch()
		applyflags(cmd)
		lnch.UpdateMessageMakerWithConfig(Msg)
		launchbanner()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("corpus", vv.DEFAULTCORPUSDIR, "directory holding the corpus")
	pf.String("glob", vv.DEFAULTCORPUSGLOB, "filename pattern selecting the documents")
	pf.Int("loglevel", vv.DEFAULTGOLOGLEVEL, "console verbosity (0-5)")
	pf.Bool("bw", false, "black and white console output")
	pf.BoolP("quiet", "q", false, "suppress the launch banner")
	pf.Bool("sparse", false, "build the sparse document-term matrix (large corpora)")
	pf.Int("workers", 0, "worker count for the sparse build (0 = all cpus)")
	pf.String("out", vv.DEFAULTOUTPUTDIR, "output directory")

	for _, c := range []*cobra.Command{runCmd, showCmd, featuresCmd, exportCmd} {
		f := c.Flags()
		f.Int("stops", vv.DEFAULTSTOPCOUNT, "treat the N most frequent types as stopwords (0 disables)")
		f.Bool("keep-hapax", false, "do not remove hapax legomena")
		f.String("stopfile", "", "JSON array of extra features to remove")
		f.String("lang", "", "also remove a built-in language stopword list (english, german)")
	}

	for _, c := range []*cobra.Command{runCmd, showCmd} {
		f := c.Flags()
		f.Int("topics", vv.DEFAULTTOPICCOUNT, "number of topics to model")
		f.Int("iterations", vv.DEFAULTITERATIONS, "sampler iterations")
		f.Int("keys", vv.DEFAULTTOPICKEYCOUNT, "keys to report per topic")
	}

	runCmd.Flags().Bool("profile", false, "write a cpu profile beside the output")
	corpusCmd.Flags().String("pattern", vv.DEFAULTNAMEPATTERN, "filename metadata pattern")
	exportCmd.Flags().String("format", "csv", "csv, mm (MatrixMarket), bow (JSON bag-of-words), or tokens")
	exportCmd.Flags().Bool("raw", false, "export the unfiltered matrix")

	malletCmd.Flags().String("doc-topics", "", "MALLET doc-topics file")
	malletCmd.Flags().String("topic-keys", "", "MALLET topic-keys file")
	malletCmd.Flags().String("word-weights", "", "MALLET word-weights file")
	malletCmd.Flags().Int("top", 25, "rows of the word-weights file to keep")

	rootCmd.AddCommand(versionCmd, corpusCmd, tokenizeCmd, exportCmd, featuresCmd, runCmd, showCmd, malletCmd)
}

// applyflags - layer any flags the user actually set over the file/default config
func applyflags(cmd *cobra.Command) {
	set := func(name string, fn func()) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			fn()
		}
	}

	flags := cmd.Flags()

	set("corpus", func() { lnch.Config.CorpusDir, _ = flags.GetString("corpus") })
	set("glob", func() { lnch.Config.CorpusGlob, _ = flags.GetString("glob") })
	set("loglevel", func() { lnch.Config.LogLevel, _ = flags.GetInt("loglevel") })
	set("bw", func() { lnch.Config.BlackAndWhite, _ = flags.GetBool("bw") })
	set("quiet", func() { lnch.Config.QuietStart, _ = flags.GetBool("quiet") })
	set("sparse", func() { lnch.Config.SparseMatrix, _ = flags.GetBool("sparse") })
	set("out", func() { lnch.Config.OutputDir, _ = flags.GetString("out") })
	set("workers", func() {
		if wc, _ := flags.GetInt("workers"); wc > 0 {
			lnch.Config.WorkerCount = wc
		}
	})
	set("stops", func() { lnch.Config.DropStops, _ = flags.GetInt("stops") })
	set("keep-hapax", func() {
		kh, _ := flags.GetBool("keep-hapax")
		lnch.Config.DropHapax = !kh
	})
	set("stopfile", func() { lnch.Config.ExtraStops, _ = flags.GetString("stopfile") })
	set("lang", func() { lnch.Config.StopLanguage, _ = flags.GetString("lang") })
	set("topics", func() { lnch.Config.TopicCount, _ = flags.GetInt("topics") })
	set("iterations", func() { lnch.Config.Iterations, _ = flags.GetInt("iterations") })
	set("keys", func() { lnch.Config.TopicKeyCount, _ = flags.GetInt("keys") })
	set("profile", func() { lnch.Config.Profiling, _ = flags.GetBool("profile") })
	set("pattern", func() { lnch.Config.NamePattern, _ = flags.GetString("pattern") })
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v.%s\n%s\n", vv.MYNAME, vv.VERSION, vv.PROJURL)
	},
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "list the corpus documents and their filename metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadcorpus()
		if err != nil {
			return err
		}
		rendercorpus(c, lnch.Config.NamePattern)
		return nil
	},
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "tokenize the corpus and write one token-per-line file per document",
	RunE: func(cmd *cobra.Command, args []string) error {
		const (
			DONE = "wrote %d tokenized documents to '%s'"
		)
		c, err := loadcorpus()
		if err != nil {
			return err
		}
		tokenized := tokenize.Corpus(c.Texts())
		dir := filepath.Join(lnch.Config.OutputDir, vv.TOKENDIR)
		if err := tokenize.WriteCorpus(dir, tokenized, c.Labels(), vv.WRITEPERMS); err != nil {
			return err
		}
		Msg.NOTE(fmt.Sprintf(DONE, len(tokenized), dir))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "build the document-term matrix and write it out",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		raw, _ := cmd.Flags().GetBool("raw")
		return exportmatrix(format, raw)
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "report the candidate stopwords and the hapax legomena",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportfeatures()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "the whole pipeline: read, tokenize, filter, model, write tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if lnch.Config.Profiling {
			defer profile.Start(profile.ProfilePath(lnch.Config.OutputDir)).Stop()
		}
		return runpipeline()
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "run the pipeline and render the topic tables to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showpipeline()
	},
}

var malletCmd = &cobra.Command{
	Use:   "mallet",
	Short: "reshape MALLET output files into the native tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		const (
			NOTHING = "nothing to do: pass --doc-topics, --topic-keys and/or --word-weights"
		)

		dtf, _ := cmd.Flags().GetString("doc-topics")
		tkf, _ := cmd.Flags().GetString("topic-keys")
		wwf, _ := cmd.Flags().GetString("word-weights")
		top, _ := cmd.Flags().GetInt("top")

		if dtf == "" && tkf == "" && wwf == "" {
			Msg.CRIT(NOTHING)
			return nil
		}

		var keylabels []string
		if tkf != "" {
			keys, err := topics.ReadMalletTopicKeys(tkf)
			if err != nil {
				return err
			}
			keylabels = rendermalletkeys(keys)
		}

		if dtf != "" {
			dt, err := topics.ReadMalletDocumentTopics(dtf)
			if err != nil {
				return err
			}
			renderdoctopics(dt, keylabels)
		}

		if wwf != "" {
			ww, err := topics.ReadMalletWordWeights(wwf, top)
			if err != nil {
				return err
			}
			renderwordweights(ww)
		}

		return nil
	},
}

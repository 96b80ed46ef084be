//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "TopicTools"
	SHORTNAME = "TT"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/dhgloss/topictools"

	CONFIGNAME     = "topictools"
	CONFIGTYPE     = "yaml"
	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/topictools/" // %s = os.UserHomeDir()
	CONFIGSTOPS    = "extra-stopwords.json"
	CONFIGLANGSTOP = "stopwords-%s.json" // %s = language name

	DEFAULTCORPUSDIR     = "corpus"
	DEFAULTCORPUSGLOB    = "*.txt"
	DEFAULTGOLOGLEVEL    = 0
	DEFAULTITERATIONS    = 200
	DEFAULTNAMEPATTERN   = "{author}_{year}_{title}"
	DEFAULTOUTPUTDIR     = "output"
	DEFAULTSTOPCOUNT     = 100
	DEFAULTTOPICCOUNT    = 10
	DEFAULTTOPICKEYCOUNT = 10

	// filenames for the tables the pipeline writes

	DTMCSV       = "document_term_matrix.csv"
	DTMMM        = "document_term_matrix.mm"
	BOWJSON      = "bagofwords.json"
	DOCTOPICSCSV = "document_topics.csv"
	TOPICKEYSCSV = "topic_keys.csv"
	TOKENDIR     = "tokenized"

	WRITEPERMS = 0644
	DIRPERMS   = 0700
	JSONINDENT = "  "

	TERMINALTEXTWIDTH = 108
)

var (
	LaunchTime = time.Now()
)

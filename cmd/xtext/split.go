package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fractalqb/xtext"
	"github.com/spf13/cobra"
)

func init() {
	splitCmd.RunE = splitFiles
	splitCmd.Flags().StringVarP(
		&splitCmd.delim,
		"delimiter", "d",
		splitCmd.delim,
		"Set the delimiter character")
	splitCmd.Flags().BoolVarP(
		&splitCmd.keep,
		"keep", "k",
		splitCmd.keep,
		"Keep delimiters at the end of segments")
	splitCmd.Flags().StringVarP(
		&splitCmd.trim,
		"trim", "t",
		splitCmd.trim,
		"Trim this character from both ends of each segment")
	rootCmd.AddCommand(&splitCmd.Command)
}

var splitCmd = struct {
	cobra.Command
	delim string
	keep  bool
	trim  string
}{
	Command: cobra.Command{
		Use:   "split [file...]",
		Short: "Write each delimited segment of the input lines on its own line",
	},
	delim: ",",
}

func splitFiles(cmd *cobra.Command, files []string) error {
	sp, err := newSplitter(splitCmd.delim, splitCmd.keep, splitCmd.trim)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return sp.text(cmd.OutOrStdout(), cmd.InOrStdin())
	}
	for _, f := range files {
		if err := splitFile(sp, cmd.OutOrStdout(), f); err != nil {
			return err
		}
	}
	return nil
}

func splitFile(sp splitter, w io.Writer, name string) error {
	rd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer rd.Close()
	return sp.text(w, rd)
}

type splitter struct {
	delim byte
	keep  bool
	trim  byte
}

func newSplitter(delim string, keep bool, trim string) (sp splitter, err error) {
	if len(delim) != 1 {
		return sp, fmt.Errorf("delimiter must be one character, have '%s'", delim)
	}
	sp.delim, sp.keep = delim[0], keep
	switch len(trim) {
	case 0:
	case 1:
		sp.trim = trim[0]
	default:
		return sp, fmt.Errorf("trim must be one character, have '%s'", trim)
	}
	return sp, nil
}

// text writes the segments of each line of subj to w. Each segment is
// followed by the line separator of its input line, or by a newline if the
// input line had none.
func (sp splitter) text(w io.Writer, subj io.Reader) (err error) {
	var sep lineSepScanner
	scn := bufio.NewScanner(subj)
	scn.Split(sep.ScanLines)
	for scn.Scan() {
		eol := []byte(sep)
		if len(eol) == 0 {
			eol = []byte{'\n'}
		}
		for _, seg := range xtext.FromBytes(scn.Bytes()).Split(sp.delim, sp.keep) {
			if sp.trim != 0 {
				seg = seg.Trim(sp.trim)
			}
			if _, err = io.WriteString(w, seg.String()); err != nil {
				return err
			}
			if _, err = w.Write(eol); err != nil {
				return err
			}
		}
	}
	return scn.Err()
}

type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		res, cr := dropCR(data)
		*lsc = data[len(data)-cr:]
		return len(data), res, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}

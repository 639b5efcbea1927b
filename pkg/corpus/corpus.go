// Package corpus turns text sources into the token streams an affinity graph
// is built from.
//
// A token is a maximal run of non-whitespace characters. Tokens are returned
// verbatim: no case folding and no punctuation stripping, so "Hello," and
// "hello," are distinct tokens here and only become the same word once a
// consumer lower-cases them.
//
// Every function reads its whole input before returning any token. Read
// failures are therefore reported before a consumer sees a single token.
package corpus

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/observability"
)

// maxTokenSize bounds a single token. bufio.Scanner's default of 64 KiB is
// too small for corpora with very long unbroken runs (minified text, URLs).
const maxTokenSize = 1 << 20

// Tokens reads r to the end and returns its whitespace-delimited tokens in
// order. An empty or all-whitespace input yields an empty, non-nil slice.
func Tokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	tokens := []string{}
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return tokens, nil
}

// FromString tokenizes an in-memory corpus.
func FromString(s string) []string {
	// strings.Fields and bufio.ScanWords agree on what whitespace is.
	return strings.Fields(s)
}

// ReadFile opens path and returns its tokens.
// A missing file yields a FILE_NOT_FOUND error, a directory INVALID_PATH, and
// any other failure INTERNAL_ERROR. Errors wrap the underlying cause.
func ReadFile(path string) ([]string, error) {
	return read(openOS, path)
}

func openOS(path string) (fs.File, error) { return os.Open(path) }

// read opens path with open and tokenizes it, reporting the read to the
// corpus hooks.
func read(open func(string) (fs.File, error), path string) ([]string, error) {
	start := time.Now()
	tokens, err := readFile(open, path)
	observability.Corpus().OnCorpusRead(path, len(tokens), time.Since(start), err)
	return tokens, err
}

func readFile(open func(string) (fs.File, error), path string) ([]string, error) {
	if err := errors.ValidateCorpusPath(path); err != nil {
		return nil, err
	}

	f, err := open(path)
	if err != nil {
		switch {
		case errors.IsNotExist(err):
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open corpus %s", path)
		case stderrors.Is(err, fs.ErrInvalid):
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open corpus %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open corpus %s", path)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "corpus %s is a directory", path)
	}

	tokens, err := Tokens(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read corpus %s", path)
	}
	return tokens, nil
}

// ReadFiles reads every path in order and returns the concatenation of their
// token streams, as if the files were one corpus. The last token of one file
// is therefore adjacent to the first token of the next.
//
// At least one path is required. The first failing file aborts the read and
// no tokens are returned.
func ReadFiles(paths ...string) ([]string, error) {
	return readAll(openOS, paths)
}

func readAll(open func(string) (fs.File, error), paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no corpus files given")
	}
	all := []string{}
	for _, p := range paths {
		tokens, err := read(open, p)
		if err != nil {
			return nil, err
		}
		all = append(all, tokens...)
	}
	return all, nil
}

// ReadFS is ReadFiles over an fs.FS, used for embedded corpora and tests.
// Paths are validated, reported and mapped to error codes as by ReadFile.
func ReadFS(fsys fs.FS, paths ...string) ([]string, error) {
	return readAll(fsys.Open, paths)
}

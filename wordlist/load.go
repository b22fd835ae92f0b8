// Package wordlist loads newline-separated dictionary files into patrix
// trees, for use as autocomplete vocabularies.
//
// Every word is mapped to its rank, i.e. its 1-based line number, so that
// frequency-sorted wordlists (most common word first) keep their ordering
// information. Blank lines are skipped without consuming a rank.
package wordlist

import (
	"bufio"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/martinberoiz/patrix"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// progressBatch is the number of words between two progress broadcasts.
const progressBatch = 1024

// Progress reports wordlist loading progress to subscribers.
type Progress struct {
	Words int  // words inserted so far
	Done  bool // set on the final message
}

// Loader reads wordlist files and broadcasts loading progress. All
// insertions happen on the calling goroutine; only the progress messages
// cross goroutine boundaries.
type Loader struct {
	cast *caster.Caster
}

// NewLoader creates a loader; clients interested in progress subscribe
// before calling Load.
func NewLoader() *Loader {
	return &Loader{cast: caster.New(nil)}
}

// Subscribe returns a channel of Progress messages. The channel closes when
// the loader is closed.
func (ld *Loader) Subscribe() (<-chan interface{}, bool) {
	return ld.cast.Sub(nil, 8)
}

// Close shuts the broadcaster down and closes all subscription channels.
func (ld *Loader) Close() {
	ld.cast.Close()
}

// Load reads a wordlist file into a fresh tree, one word per line, mapped
// to its rank. Progress is broadcast to subscribers every progressBatch
// words and once at the end.
func (ld *Loader) Load(name string) (*patrix.Tree[int], error) {
	file, err := openWordlist(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tree, err := patrix.New[int]()
	assert(err == nil, "creating an empty tree cannot fail")
	scanner := bufio.NewScanner(file)
	rank := 0
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		rank++
		if err := tree.Insert(word, rank); err != nil {
			return nil, fmt.Errorf("wordlist %s line %d: %w", name, rank, err)
		}
		if rank%progressBatch == 0 {
			ld.cast.TryPub(Progress{Words: rank})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist %s: %w", name, err)
	}
	ld.cast.Pub(Progress{Words: rank, Done: true})
	T().P("wordlist", name).Infof("loaded %d words", rank)
	return tree, nil
}

// Load reads a wordlist file into a fresh tree without progress reporting.
func Load(name string) (*patrix.Tree[int], error) {
	ld := NewLoader()
	defer ld.Close()
	return ld.Load(name)
}

// openWordlist opens an OS file for reading, checking for error conditions.
func openWordlist(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordlist is not a regular file")
	}
	return os.Open(name)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

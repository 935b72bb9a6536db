package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/skyline93/adt/internal/bstree"
	"github.com/skyline93/adt/internal/hashtable"
	"github.com/spf13/cobra"
)

var cmdFreq = &cobra.Command{
	Use:   "freq [flags] [FILE] ...",
	Short: "Count word frequencies in the given files",
	Long: `
The "freq" command counts how often each word occurs in the given files and
prints one "word<TAB>count" line per word in alphabetical order. With no
arguments it reads from stdin.

Counting runs over a chained hash table; the sorted output is produced by a
binary search tree over the distinct words.
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunFreq(args); err != nil {
			panic(err)
		}
	},
}

// FreqOptions bundles all options for the freq command.
type FreqOptions struct {
	MinCount int
	Stats    bool
}

var freqOptions FreqOptions

func init() {
	cmdRoot.AddCommand(cmdFreq)

	f := cmdFreq.Flags()
	f.IntVar(&freqOptions.MinCount, "min-count", 1, "only print words that occur at least `n` times")
	f.BoolVar(&freqOptions.Stats, "stats", false, "print hash table statistics after counting")
}

func RunFreq(args []string) error {
	counts, err := hashtable.New[string, int](hashtable.Options[string]{})
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if err := countWords(os.Stdin, counts); err != nil {
			return err
		}
	}
	for _, name := range args {
		fd, err := os.Open(name)
		if err != nil {
			return err
		}
		err = countWords(fd, counts)
		fd.Close()
		if err != nil {
			return err
		}
	}

	words := &bstree.Tree[string]{}
	counts.Each(func(_ int, word string, _ int) bool {
		words.Insert(word)
		return true
	})

	words.Each(func(word string) bool {
		n, err := counts.Get(word)
		if err != nil {
			return false
		}
		if *n >= freqOptions.MinCount {
			fmt.Printf("%s\t%d\n", word, *n)
		}
		return true
	})

	if freqOptions.Stats {
		printTableStats(counts.Stats())
	}

	return nil
}

// countWords tallies the words of rd into counts.
func countWords(rd io.Reader, counts *hashtable.Table[string, int]) error {
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		for _, w := range splitWords(sc.Text()) {
			if n, err := counts.Get(w); err == nil {
				*n++
				continue
			}
			counts.Insert(w, 1)
		}
	}
	return sc.Err()
}

// splitWords lower-cases s and splits it into words. Apostrophes stay part
// of a word so contractions survive.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func printTableStats(s hashtable.Stats) {
	log.Printf("table stats: entries=%d buckets=%d used_buckets=%d allocated=%d max_chain=%d avg_chain=%.2f load_factor=%.2f",
		s.Entries, s.Buckets, s.UsedBuckets, s.Allocated, s.MaxChain, s.AvgChain, s.LoadFactor)
}

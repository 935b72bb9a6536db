package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	sha256 "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/restic/chunker"
	"github.com/skyline93/adt/internal/hashtable"
	"github.com/skyline93/adt/internal/queue"
	"github.com/skyline93/adt/internal/stack"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var cmdChunks = &cobra.Command{
	Use:   "chunks [flags] [FILE/DIR] ...",
	Short: "Estimate deduplication savings for files and directories",
	Long: `
The "chunks" command cuts the given files (and the files below the given
directories) into content-defined chunks, keys a hash table by the SHA-256
digest of each chunk and reports how much data is duplicated. With
--compress it additionally reports the zstd-compressed size of the unique
chunks.
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunChunks(cmd.Context(), args); err != nil {
			panic(err)
		}
	},
}

// ChunksOptions bundles all options for the chunks command.
type ChunksOptions struct {
	ReadConcurrency uint
	Compress        bool
	Stats           bool
}

var chunksOptions ChunksOptions

func init() {
	cmdRoot.AddCommand(cmdChunks)

	f := cmdChunks.Flags()
	f.UintVar(&chunksOptions.ReadConcurrency, "read-concurrency", 0, "read `n` files concurrently (default: 2)")
	f.BoolVar(&chunksOptions.Compress, "compress", false, "estimate the zstd-compressed size of the unique chunks")
	f.BoolVar(&chunksOptions.Stats, "stats", false, "print hash table statistics and peak memory usage")
}

// chunkerPol is the fixed polynomial used for chunking, so that equal input
// always produces equal chunk boundaries across runs.
const chunkerPol = chunker.Pol(0x3DA3358B4DC173)

// digestSize contains the size of a chunk digest, in bytes.
const digestSize = sha256.Size

// Digest identifies a chunk by the SHA-256 of its content.
type Digest [digestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

const shortStr = 4

// Str returns the shortened string version of d.
func (d Digest) Str() string {
	return hex.EncodeToString(d[:shortStr])
}

type chunkRecord struct {
	digest Digest
	length uint
	data   []byte
}

// chunkInfo is the table value for one unique chunk.
type chunkInfo struct {
	length uint
	refs   int
}

type dedupStats struct {
	files           int
	chunks          int
	totalBytes      uint64
	uniqueBytes     uint64
	compressedBytes uint64
}

func RunChunks(ctx context.Context, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	table, err := hashtable.New[Digest, chunkInfo](hashtable.Options[Digest]{Capacity: 1024})
	if err != nil {
		return err
	}

	var enc *zstd.Encoder
	if chunksOptions.Compress {
		enc, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			// Disable CRC, the estimate does not need integrity checks.
			zstd.WithEncoderCRC(false),
			zstd.WithWindowSize(512*1024),
		)
		if err != nil {
			return err
		}
		defer enc.Close()
	}

	readers := chunksOptions.ReadConcurrency
	if readers == 0 {
		readers = 2
	}

	numFiles := files.Len()
	pathCh := make(chan string)
	recCh := make(chan chunkRecord)

	wg, wgCtx := errgroup.WithContext(ctx)

	wg.Go(func() error {
		defer close(pathCh)
		for {
			p, ok := files.Pop()
			if !ok {
				return nil
			}
			select {
			case pathCh <- p:
			case <-wgCtx.Done():
				return wgCtx.Err()
			}
		}
	})

	readWg, readCtx := errgroup.WithContext(wgCtx)
	for i := uint(0); i < readers; i++ {
		readWg.Go(func() error {
			for {
				select {
				case p, ok := <-pathCh:
					if !ok {
						return nil
					}
					if err := chunkFile(readCtx, p, recCh); err != nil {
						return err
					}
				case <-readCtx.Done():
					return readCtx.Err()
				}
			}
		})
	}
	wg.Go(func() error {
		// The record channel closes once every reader is done, which in
		// turn ends the collector loop below.
		err := readWg.Wait()
		close(recCh)
		return err
	})

	// The collector is the only goroutine touching the table; the readers
	// never see it.
	st := collectChunks(table, recCh, enc)
	st.files = numFiles

	if werr := wg.Wait(); werr != nil {
		return werr
	}

	reportDedup(st, chunksOptions.Compress)
	if chunksOptions.Stats {
		printTableStats(table.Stats())
		if rss, err := peakRSS(); err == nil {
			log.Printf("peak rss: %d bytes", rss)
		}
	}

	return nil
}

// collectFiles walks the given paths and returns all regular files below
// them. Directories are traversed depth-first off a stack.
func collectFiles(targets []string) (*queue.Queue[string], error) {
	files := &queue.Queue[string]{}
	var dirs stack.Stack[string]

	for _, t := range targets {
		fi, err := os.Stat(t)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			dirs.Push(t)
		} else {
			files.Push(t)
		}
	}

	for {
		dir, ok := dirs.Pop()
		if !ok {
			break
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, ent := range entries {
			p := filepath.Join(dir, ent.Name())
			if ent.IsDir() {
				dirs.Push(p)
			} else if ent.Type().IsRegular() {
				files.Push(p)
			}
		}
	}

	return files, nil
}

// chunkFile cuts path into content-defined chunks and sends one record per
// chunk to out.
func chunkFile(ctx context.Context, path string, out chan<- chunkRecord) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	ch := chunker.New(fd, chunkerPol)
	buf := make([]byte, chunker.MaxSize)
	for {
		chunk, err := ch.Next(buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "chunk %v", path)
		}

		// chunk.Data aliases buf and is overwritten by the next cut.
		data := make([]byte, len(chunk.Data))
		copy(data, chunk.Data)

		rec := chunkRecord{
			digest: Digest(sha256.Sum256(data)),
			length: chunk.Length,
			data:   data,
		}
		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// collectChunks drains in, deduplicating chunks by digest. When enc is not
// nil, every first-seen chunk is compressed to size the unique byte set.
func collectChunks(table *hashtable.Table[Digest, chunkInfo], in <-chan chunkRecord, enc *zstd.Encoder) dedupStats {
	var st dedupStats
	for rec := range in {
		st.chunks++
		st.totalBytes += uint64(rec.length)

		if info, err := table.Get(rec.digest); err == nil {
			info.refs++
			continue
		}

		table.Insert(rec.digest, chunkInfo{length: rec.length, refs: 1})
		st.uniqueBytes += uint64(rec.length)
		if enc != nil {
			st.compressedBytes += uint64(len(enc.EncodeAll(rec.data, nil)))
		}
	}
	return st
}

func reportDedup(st dedupStats, compress bool) {
	fmt.Printf("files: %d\n", st.files)
	fmt.Printf("chunks: %d\n", st.chunks)
	fmt.Printf("total bytes: %d\n", st.totalBytes)
	fmt.Printf("unique bytes: %d\n", st.uniqueBytes)
	if st.totalBytes > 0 {
		fmt.Printf("dedup ratio: %.2f%%\n", 100*float64(st.totalBytes-st.uniqueBytes)/float64(st.totalBytes))
	}
	if compress {
		fmt.Printf("compressed bytes: %d\n", st.compressedBytes)
	}
}

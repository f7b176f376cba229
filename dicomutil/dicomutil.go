// Command dicomutil dumps DICOM files or converts the images referenced by
// a DICOMDIR into bitmaps.
//
//	dicomutil -dump FILE
//	dicomutil -out DIR [-image-type PATTERN] DICOMDIR
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/emperorkrosis/dicom"
	"github.com/emperorkrosis/dicom/dicomlog"
	"github.com/sirupsen/logrus"
)

type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

var (
	dumpFile  = flag.Bool("dump", false, "Print every element of the given file instead of converting")
	outDir    = flag.String("out", "images", "Directory for the extracted bitmaps")
	verbosity = flag.Int("v", 0, "Log verbosity; -1 disables logging")
	strict    = flag.Bool("strict", false, "Reject files that are not explicit VR little endian")
	workers   = flag.Int("j", 1, "Number of files converted in parallel")
	minRows   = flag.Int("min-rows", 0, "Skip images with fewer rows")
	minCols   = flag.Int("min-columns", 0, "Skip images with fewer columns")

	imageTypes patternList
)

func main() {
	flag.Var(&imageTypes, "image-type", "Only convert records whose Image Type matches this glob (repeatable)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dicomutil [-dump] [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	dicomlog.SetLevel(*verbosity)

	parser := dicom.NewParser(dicom.ParseOptions{StrictTransferSyntax: *strict})
	path := flag.Arg(0)

	if *dumpFile {
		if err := parser.DecodeFile(path, dicom.NewDumpSink(os.Stdout, nil)); err != nil {
			logrus.Fatalf("%s: %v", path, err)
		}
		return
	}

	failed, err := convertDirectory(parser, path)
	if err != nil {
		logrus.Fatalf("%s: %v", path, err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// resolveFileID turns a Referenced File ID ("DICOM\\8428\\8429") into a
// path relative to the directory holding the DICOMDIR.
func resolveFileID(root, id string) string {
	parts := strings.Split(strings.TrimSpace(id), "\\")
	return filepath.Join(append([]string{root}, parts...)...)
}

type job struct {
	src, dst string
}

// convertDirectory converts every image referenced by the DICOMDIR at
// path. A file that fails to convert is logged and skipped.
func convertDirectory(parser *dicom.Parser, path string) (int, error) {
	sink, err := dicom.NewFilteredDirectorySink(dicom.DirectoryOptions{
		ImageTypes: imageTypes,
		MinRows:    *minRows,
		MinColumns: *minCols,
	})
	if err != nil {
		return 0, err
	}
	if err := parser.DecodeFile(path, sink); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return 0, err
	}

	root := filepath.Dir(path)
	jobs := make(chan job)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	n := *workers
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				log := dicomlog.WithFile(j.src)
				if err := parser.ConvertFile(j.src, j.dst); err != nil {
					log.Errorf("conversion failed: %v", err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				log.Infof("wrote %s", j.dst)
			}
		}()
	}
	for i, id := range sink.Files() {
		jobs <- job{
			src: resolveFileID(root, id),
			dst: filepath.Join(*outDir, fmt.Sprintf("output%d.bmp", i+1)),
		}
	}
	close(jobs)
	wg.Wait()
	return failed, nil
}

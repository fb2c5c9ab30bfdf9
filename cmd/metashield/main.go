// Command metashield shows and removes privacy sensitive
// metadata of JPEG photos.
//
// Usage:
//
//	metashield [flags] command file...
//
// Commands are:
//
//	view    show device, capture and location details
//	gps     show the location in decimal and DMS notation
//	prompt  print a privacy risk description of the metadata
//	strip   write copies of the files with Exif emptied
//	dump    print all segments and Exif tags
//	thumb   extract the upright Exif thumbnail
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ebenezerdon/metashield-photo-privacy"
)

type command struct {
	name string
	run  func(d *metashield.Document, src string) error
}

var (
	verbose = flag.Bool("v", false, "verbose logging")
	outDir  = flag.String("o", "", "output directory for strip and thumb, default is the directory of the source")
	prefix  = flag.String("prefix", metashield.DefaultCleanPrefix, "file name prefix of stripped files")
)

var log zerolog.Logger

func main() {
	flag.Usage = usage
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if flag.NArg() < 2 {
		usage()
		os.Exit(2)
	}

	cmd := findCommand(flag.Arg(0))
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "metashield: unknown command %q\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	s := metashield.NewSession(
		metashield.WithLogger(log),
		metashield.WithCleanPrefix(*prefix),
	)

	failed := false
	for _, fn := range flag.Args()[1:] {
		if err := processFile(s, cmd, fn); err != nil {
			log.Error().Err(err).Str("file", fn).Msg(cmd.name)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: metashield [flags] command file...\n\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, " %s", c.name)
	}
	fmt.Fprintf(os.Stderr, "\n\nflags:\n")
	flag.PrintDefaults()
}

func findCommand(name string) *command {
	for i := range commands {
		if commands[i].name == name {
			return &commands[i]
		}
	}
	return nil
}

func processFile(s *metashield.Session, cmd *command, fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	sniff := make([]byte, 512)
	n, _ := f.Read(sniff)
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	mt := http.DetectContentType(sniff[:n])
	log.Debug().Str("file", fn).Str("type", mt).Msg("detected")

	d, err := s.Load(filepath.Base(fn), mt, f)
	if err != nil && d == nil {
		return err
	}
	if err != nil && cmd.name != "strip" && cmd.name != "dump" {
		return err
	}

	return cmd.run(d, fn)
}

func outPath(src, name string) string {
	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, name)
}

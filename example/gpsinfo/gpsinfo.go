// Command gpsinfo prints the GPS tags of the JPEG files
// found in the directory trees named on the command line.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebenezerdon/metashield-photo-privacy"
	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

func main() {
	for _, root := range os.Args[1:] {
		err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				log.Println(err)
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if de.IsDir() || (ext != ".jpg" && ext != ".jpeg") {
				return nil
			}
			if err := show(path); err != nil {
				log.Println(err)
			}
			return nil
		})
		if err != nil {
			log.Println(err)
		}
	}
}

func show(path string) error {
	p, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	d, err := metashield.Parse(filepath.Base(path), p)
	if err != nil {
		return err
	}
	x := d.Exif()
	if x == nil || len(x.GPS) == 0 {
		return nil
	}

	fmt.Println(path)
	for _, e := range x.GPS {
		id := exiftag.Id(exiftag.GPS | uint32(e.Tag))
		fmt.Printf("  %-20s %s\n", id, exif.FormatValue(e.Value))
	}
	if lat, long, ok := d.LatLong(); ok {
		fmt.Printf("  %s, %s (%.6f, %.6f)\n", exif.ToDMS(lat), exif.ToDMS(long), lat, long)
	}
	return nil
}

// Command haystack scans a file or packet capture for semantic values
// hidden in any of their on-wire encodings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rufus-stone/haystack"
	"github.com/rufus-stone/haystack/capture"
	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/source"
)

func main() {
	haystackPath := flag.String("haystack", "", "path to a plain byte buffer to scan")
	pcapPath := flag.String("pcap", "", "path to a pcap capture; each packet's payload is scanned independently")
	needlesPath := flag.String("needles", "", "path to a JSON file describing the target needles")
	codecName := flag.String("codec", "auto", "compression codec for -haystack: auto, none, gzip, zstd, s2, lz4")
	maxOffset := flag.Int("max-offset", 0, "stop scanning after this many starting offsets (0 = unbounded)")
	flag.Parse()

	if *needlesPath == "" {
		log.Fatal("-needles is required")
	}
	if (*haystackPath == "") == (*pcapPath == "") {
		log.Fatal("exactly one of -haystack or -pcap is required")
	}

	needles, err := loadNeedles(*needlesPath)
	if err != nil {
		log.Fatalf("load needles: %v", err)
	}

	scanner, err := haystack.NewScanner(haystack.WithMaxOffset(*maxOffset))
	if err != nil {
		log.Fatalf("configure scanner: %v", err)
	}

	var hits []haystack.Hit

	switch {
	case *haystackPath != "":
		hits, err = scanFile(scanner, *haystackPath, *codecName, needles)
	case *pcapPath != "":
		hits, err = scanPcap(scanner, *pcapPath, needles)
	}
	if err != nil {
		log.Fatal(err)
	}

	for _, h := range hits {
		fmt.Printf("offset=%d variant=%s actual=%v\n", h.Offset, h.Variant, h.Actual)
	}
}

func scanFile(scanner *haystack.Scanner, path, codecName string, needles []needle.Needle) ([]haystack.Hit, error) {
	kind, err := source.ParseKind(codecName)
	if err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	data, err := source.Load(path, kind)
	if err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return scanner.Scan(data, needles), nil
}

func scanPcap(scanner *haystack.Scanner, path string, needles []needle.Needle) ([]haystack.Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan pcap: %w", err)
	}
	defer f.Close()

	payloads, err := capture.ReadPcap(f)
	if err != nil {
		return nil, fmt.Errorf("scan pcap: %w", err)
	}

	var hits []haystack.Hit
	for _, perPacket := range scanner.ScanSources(payloads, needles) {
		hits = append(hits, perPacket...)
	}

	return hits, nil
}

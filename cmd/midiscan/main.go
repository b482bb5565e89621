package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
)

var (
	listFlag    = flag.String("l", "", "The path to the list of raw MIDI capture files,\nfind . -type f -name \"*.bin\" > capture_list.txt")
	maxFlag     = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			out <- scanner.Text()
		}
		close(out)
	}()

	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	if *verboseFlag {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		enableDebugLogging(logger)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	paths := readList(f)
	m, err := newKindMap(context.Background(), paths, *maxFlag)

	if err != nil {
		log.Fatal(err)
	}

	for kind, channels := range m {
		total := 0
		for _, n := range channels {
			total += n
		}
		fmt.Printf("%s: %d\n", kind, total)
	}
}

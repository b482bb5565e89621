package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mprosk/midiwire/pkg/midi"
)

var (
	inFlag = flag.String("i", "", "Input file of raw MIDI bytes, stdin if omitted")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inFlag != "" {
		f, err := os.Open(*inFlag)
		if err != nil {
			log.Fatal(err)
		}

		defer f.Close()
		in = f
	}

	reader := midi.NewReader(in)

	for {
		msg, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(msg)
	}
}

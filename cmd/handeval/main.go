package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"

	"github.com/sirupsen/logrus"
)

var strict = flag.Bool("strict", false, "reject hands that repeat a card")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-strict] \"KC KH KD 7C 5S\" [\"AC 4H 7D KC 2S\"]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, flag.Args(), *strict); err != nil {
		logrus.WithError(err).Fatal("could not evaluate hands")
	}
}

func run(w io.Writer, args []string, strict bool) error {
	hands := make([]*poker.Hand, len(args))
	for i, arg := range args {
		h, err := evaluate(arg, strict)
		if err != nil {
			return err
		}

		hands[i] = h
		fmt.Fprintf(w, "%s: %s %v\n", h, h.Category(), h.TieBreak())
	}

	if len(hands) == 2 {
		fmt.Fprintf(w, "%s\n", hands[0].Compare(hands[1]))
	}

	return nil
}

func evaluate(s string, strict bool) (*poker.Hand, error) {
	cards, err := deck.HandFromString(s)
	if err != nil {
		return nil, err
	}

	if strict {
		if dupes := cards.Duplicates(); len(dupes) > 0 {
			return nil, fmt.Errorf("%s: duplicate cards: %s", s, deck.Hand(dupes))
		}
	}

	return poker.NewHand(cards)
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/facetkit/facet/pkg/variant"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, variant.ErrConfiguration) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

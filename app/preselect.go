package app

import (
	"bufio"
	"os"
	"regexp"

	"github.com/pkg/errors"

	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// preSelector applies --pre-select-n/--pre-select-items/--pre-select-pat/
// --pre-select-file as new items arrive, so selection reflects items the
// operator never had to scroll to. All four sources are additive.
type preSelector struct {
	n       int
	items   map[string]bool
	pat     *regexp.Regexp
	applied int // store length already scanned for items/pat matches.
}

func newPreSelector(opts *config.Options) (*preSelector, error) {
	p := &preSelector{n: opts.PreSelectN}

	if opts.PreSelectItems != "" {
		p.items = make(map[string]bool)
		for _, s := range splitComma(opts.PreSelectItems) {
			p.items[s] = true
		}
	}
	if opts.PreSelectFile != "" {
		lines, err := readLines(opts.PreSelectFile)
		if err != nil {
			return p, errors.Wrapf(err, "pre-select-file")
		}
		if p.items == nil {
			p.items = make(map[string]bool)
		}
		for _, l := range lines {
			p.items[l] = true
		}
	}
	if opts.PreSelectPat != "" {
		re, err := regexp.Compile(opts.PreSelectPat)
		if err != nil {
			return p, errors.Wrapf(err, "pre-select-pat")
		}
		p.pat = re
	}
	return p, nil
}

// apply selects every newly-appended item (since the last call) that
// matches any configured source, plus the first n items by index.
func (p *preSelector) apply(store *item.Store, model *selectionmodel.Model) {
	total := store.Len()
	if p.n > 0 {
		limit := p.n
		if limit > total {
			limit = total
		}
		for i := 0; i < limit; i++ {
			model.Selected.Add(i)
		}
	}

	if p.items == nil && p.pat == nil {
		p.applied = total
		return
	}
	for i := p.applied; i < total; i++ {
		it, ok := store.At(i)
		if !ok {
			continue
		}
		if p.items[string(it.Raw)] || (p.pat != nil && p.pat.MatchString(it.Candidate)) {
			model.Selected.Add(i)
		}
	}
	p.applied = total
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/shamela"
)

// FirstPageName is the first file of a multi-file book export.
const FirstPageName = "000" + shamela.PageExt

// followingPageRe matches the names of the second to tenth files of a
// multi-file book export.
var followingPageRe = regexp.MustCompile(`^00[1-9]\.htm$`)

// Classify decides how the processor treats path.
func Classify(path string) shamela.PathKind {
	info, err := os.Stat(path)
	if err != nil {
		return shamela.PathUnsupported
	}

	switch {
	case info.Mode().IsRegular() && strings.HasSuffix(path, shamela.PageExt):
		return shamela.PathSingleFile
	case info.IsDir() && IsMultiFileBook(path):
		return shamela.PathMultiFileBook
	case info.IsDir():
		return shamela.PathContainer
	}
	return shamela.PathUnsupported
}

// IsMultiFileBook reports whether dir holds the pages of a single book:
// a 000.htm file followed by at least one of 001.htm to 009.htm.
func IsMultiFileBook(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	var first, following bool
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch name := e.Name(); {
		case name == FirstPageName:
			first = true
		case followingPageRe.MatchString(name):
			following = true
		}
	}
	return first && following
}

// BookPages returns the page files of a multi-file book in numeric order.
// Page files are .htm files whose stem is a non-negative integer. Names of
// .htm files with any other stem are returned as ignored.
func BookPages(dir string) (pages, ignored []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	type page struct {
		num  uint64
		name string
	}
	var found []page
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, shamela.PageExt) {
			continue
		}
		stem := strings.TrimSuffix(name, shamela.PageExt)
		num, err := strconv.ParseUint(stem, 10, 64)
		if err != nil {
			ignored = append(ignored, name)
			continue
		}
		found = append(found, page{num: num, name: name})
	}

	slices.SortStableFunc(found, func(a, b page) int {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return strings.Compare(a.name, b.name)
	})

	for _, p := range found {
		pages = append(pages, filepath.Join(dir, p.name))
	}
	return pages, ignored, nil
}
